package task

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"git.fiblab.net/sim/syncer/v3"
	"github.com/OpenHUTB/carla-0.9.14/clock"
	"github.com/OpenHUTB/carla-0.9.14/entity"
	"github.com/OpenHUTB/carla-0.9.14/entity/controller"
	"github.com/OpenHUTB/carla-0.9.14/importer"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/utils/config"
	"github.com/OpenHUTB/carla-0.9.14/utils/input"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "task")

var _ entity.ITaskContext = (*Context)(nil)

// Context 信控运行任务上下文
// 功能：包含一次运行的全部组件与状态
// 说明：管理时钟、信控中心、导入得到的场景与sidecar
type Context struct {
	// 退出指令
	stopped atomic.Bool
	// 已关闭
	closed atomic.Bool

	// 时钟
	clock *clock.Clock

	// 辅助程序，处理分布式模式下相关调用，包括与syncer、其他服务的交互
	sidecar *syncer.Sidecar
	// sidecar是否在服务
	serving bool
	// sidecar close channel
	sidecarCloseCh chan struct{}

	// 信控中心
	controller *controller.TrafficController
	// 导入得到的场景，元数据无效时为nil
	scene *importer.Scene

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 用于初始化的输入
	initRes *input.Input
}

// NewContext 创建新的任务上下文
// 功能：加载输入，创建时钟与信控中心并注册RPC服务
// 参数：
//   - ctx: 用于输入加载的上下文
//   - cacheDir: 缓存目录
//   - c: 配置对象
//   - sidecar: sidecar实例
//   - startSidecarServe: 是否启动sidecar服务（sidecar没有监听地址时必须为false）
//
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 创建时钟与运行时配置
// 2. 下载元数据与OpenDRIVE文件
// 3. 创建信控中心（按配置启用指标）
// 4. 注册RPC服务到sidecar并启动服务
func NewContext(
	ctx context.Context,
	cacheDir string,
	c config.Config,
	sidecar *syncer.Sidecar,
	startSidecarServe bool,
) (*Context, error) {
	t := &Context{
		sidecar:        sidecar,
		sidecarCloseCh: make(chan struct{}),
		clock:          clock.New(c.Control.Step),
		runtimeConfig:  config.NewRuntimeConfig(c),
	}

	var err error
	if t.initRes, err = input.Load(ctx, c, cacheDir); err != nil {
		return nil, err
	}

	opts := make([]controller.Option, 0)
	if t.runtimeConfig.C.Metrics {
		m, err := controller.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			return nil, fmt.Errorf("create metrics: %w", err)
		}
		opts = append(opts, controller.WithMetrics(m))
	}
	t.controller = controller.New(opts...)

	t.clock.Register(t.sidecar)
	t.controller.Register(t.sidecar)

	// sidecar协程，用于提供RPC服务
	if startSidecarServe {
		t.serving = true
		go func() {
			if err := t.sidecar.Serve(); err != nil {
				log.Panicf("failed to serve: %v", err)
			}
			t.sidecarCloseCh <- struct{}{}
		}()
	}
	return t, nil
}

func (t *Context) Clock() *clock.Clock {
	return t.clock
}

func (t *Context) Controller() entity.ITrafficController {
	return t.controller
}

func (t *Context) Scene() *importer.Scene {
	return t.scene
}

func (t *Context) RuntimeConfig() *config.RuntimeConfig {
	return t.runtimeConfig
}

// Init 导入场景并开始运行
// 功能：解析输入，按导入方式生成场景并导入，最后调用BeginPlay
// 返回：导入方式无效或输入读取失败时返回错误
// 说明：元数据结构无效时记录错误并以无信控状态继续运行
func (t *Context) Init() error {
	t.clock.Init()

	mode, err := importer.ParseMode(t.runtimeConfig.C.ImportMode)
	if err != nil {
		return err
	}
	odMap, err := t.initRes.ParseOpenDrive()
	if err != nil {
		log.Warnf("ignore opendrive signal mapping: %v", err)
		odMap = nil
	}
	md, err := t.initRes.ParseMetadata()
	if err != nil {
		if errors.Is(err, metadata.ErrMalformedMetadata) {
			log.Errorf("traffic control disabled: %v", err)
			t.controller.BeginPlay(nil)
			return nil
		}
		return err
	}
	log.Infof("SignalAsset: %v", len(md.SignalAssets))
	log.Infof("Junction: %v", len(md.Junctions))
	log.Infof("OpenDriveSignal: %v", len(odMap))

	t.scene, err = t.importScene(mode, md, odMap)
	if err != nil {
		if errors.Is(err, metadata.ErrMalformedMetadata) {
			log.Errorf("traffic control disabled: %v", err)
			t.scene = nil
			t.controller.BeginPlay(nil)
			return nil
		}
		return err
	}
	t.controller.BeginPlay(t.scene)
	return nil
}

// importScene 按导入方式生成无渲染场景并导入
func (t *Context) importScene(mode importer.Mode, md *metadata.Metadata, odMap map[int]string) (*importer.Scene, error) {
	data := t.initRes.Metadata
	switch mode {
	case importer.ModeBlueprint:
		opts := make([]metadata.ParseOption, 0)
		if t.runtimeConfig.C.EditorMatch {
			opts = append(opts, metadata.WithPattern(metadata.PatternEditor))
		}
		root, owner := importer.SynthesizeBlueprint(md)
		return importer.ImportBlueprint(t.controller, data, root, owner, odMap, opts...)
	case importer.ModeDatasmith:
		actors, err := importer.SynthesizeDatasmith(md, odMap)
		if err != nil {
			return nil, err
		}
		return importer.ImportDatasmith(t.controller, actors)
	default:
		return importer.ImportLevel(t.controller, data, importer.SynthesizeLevel(md), odMap)
	}
}

// Close 关闭任务，等待sidecar退出
func (t *Context) Close() {
	if t.closed.Swap(true) {
		return
	}
	if !t.serving {
		return
	}
	t.sidecar.Close()
	// wait for graceful stop
	<-t.sidecarCloseCh
}

// Stop 请求在当前步结束后退出
func (t *Context) Stop() {
	t.stopped.Store(true)
}
