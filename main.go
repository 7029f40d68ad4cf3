package main

import (
	"context"
	"encoding/base64"
	"flag"
	"os"
	"syscall"

	"git.fiblab.net/general/common/v2/signalutil"
	"git.fiblab.net/sim/syncer/v3"
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/OpenHUTB/carla-0.9.14/task"
	"github.com/OpenHUTB/carla-0.9.14/utils/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	// 分布式模式syncer地址，如果设置为空则激活独立部署模式
	// 独立部署：不需要syncer，不向其他服务提供受保护的RPC访问
	syncerAddr = pflag.String("syncer", "", "syncer address (empty means standalone mode), e.g. http://localhost:53001")
	// 本程序监听的RPC地址，设置为空则不提供RPC服务
	grpcAddr = pflag.String("listen", ":51102", "rpc listening address (empty means no rpc service)")
	// 配置文件路径
	configPath = pflag.String("config", "", "config file path")
	// 配置文件Base64编码后的数据
	configData = pflag.String("config-data", "", "config file base64 encoded data")
	// 数据加载input的缓存地址，设置为空则禁用缓存功能
	// 缓存：将从数据库下载的文件与元数据解析结果序列化到本地文件系统，并总是先试图从文件系统中加载
	cacheDir = pflag.String("cache", "data/", "input cache dir path (empty means disable cache)")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = pflag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "roadrunner")
)

// readConfig 从文件或Base64数据读取配置
func readConfig() (config.Config, error) {
	var file []byte
	var err error
	switch {
	case *configPath != "":
		file, err = os.ReadFile(*configPath)
	case *configData != "":
		file, err = base64.StdEncoding.DecodeString(*configData)
	default:
		log.Panic("config file or config data must be specified")
	}
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(file)
}

func main() {
	// 包内通过flag注册的参数（如log.heartbeat_interval）
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	c, err := readConfig()
	if err != nil {
		log.Panicf("config load err: %v", err)
	}
	log.Infof("%+v", c)

	sidecar := syncer.NewSidecar(task.SelfName, *grpcAddr, *syncerAddr)
	t, err := task.NewContext(context.Background(), *cacheDir, c, sidecar, *grpcAddr != "")
	if err != nil {
		log.Panicf("failed to create task: %v", err)
	}
	signalutil.StartExitBySignal([]os.Signal{syscall.SIGINT, syscall.SIGTERM}, func() {
		log.Info("exit signal received, stop after current step")
		t.Stop()
	})

	if err := t.Run(); err != nil {
		log.Panicf("failed to run: %v", err)
	}
}
