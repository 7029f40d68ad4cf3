package controller

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/OpenHUTB/carla-0.9.14/entity/catalog"
	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "controller")

// SignalHost 场景中信号灯与路口组件的宿主，BeginPlay时用于恢复旧版导入的映射
type SignalHost interface {
	SignalComponents() []*signal.TrafficSignal
	JunctionComponents() []*junction.TrafficJunction
}

// Option 控制器选项
type Option func(*TrafficController)

// WithMetrics 使用prometheus指标
func WithMetrics(m *Metrics) Option {
	return func(c *TrafficController) {
		c.metrics = m
	}
}

// TrafficController 信控中心
// 功能：持有信号灯资产目录、信号灯与路口，把路口或外部下发的配置路由到对应信号灯
// 说明：查找表只在导入与BeginPlay时修改；Update在单一仿真协程中执行
type TrafficController struct {
	catalog *catalog.Catalog

	signals      map[string]*signal.TrafficSignal
	openDriveIDs map[int]string

	junctions    []*junction.TrafficJunction // 按注册顺序更新
	junctionData map[string]*junction.TrafficJunction

	signalToJunction   map[string]*junction.TrafficJunction
	signalToJunctionID map[string]string // 旧版导入保存的信号灯id到路口id，BeginPlay时恢复

	queue   commandQueue
	metrics *Metrics
}

// New 创建信控中心
func New(opts ...Option) *TrafficController {
	c := &TrafficController{
		signals:            make(map[string]*signal.TrafficSignal),
		openDriveIDs:       make(map[int]string),
		junctions:          make([]*junction.TrafficJunction, 0),
		junctionData:       make(map[string]*junction.TrafficJunction),
		signalToJunction:   make(map[string]*junction.TrafficJunction),
		signalToJunctionID: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init 载入信号灯资产
func (c *TrafficController) Init(assets map[string]metadata.SignalAsset) {
	c.catalog = catalog.New(assets)
}

// GetSignalAsset 查询信号灯资产，不存在时返回空资产
func (c *TrafficController) GetSignalAsset(assetID string) metadata.SignalAsset {
	return c.catalog.Get(assetID)
}

// Catalog 资产目录，Init之前为nil
func (c *TrafficController) Catalog() *catalog.Catalog {
	return c.catalog
}

// AddSignal 注册信号灯，同id后注册的覆盖先注册的
func (c *TrafficController) AddSignal(id string, s *signal.TrafficSignal) {
	c.signals[id] = s
}

// AddOpenDriveIDMapping 注册OpenDRIVE信号灯id到信号灯uuid的映射
func (c *TrafficController) AddOpenDriveIDMapping(odID int, uuid string) {
	c.openDriveIDs[odID] = uuid
}

// AddJunction 注册路口
// 说明：同id的路口原位替换，不改变更新顺序
func (c *TrafficController) AddJunction(j *junction.TrafficJunction) {
	if old, ok := c.junctionData[j.ID()]; ok {
		for i, jj := range c.junctions {
			if jj == old {
				c.junctions[i] = j
			}
		}
		for id, jj := range c.signalToJunction {
			if jj == old {
				c.signalToJunction[id] = j
			}
		}
	} else {
		c.junctions = append(c.junctions, j)
	}
	c.junctionData[j.ID()] = j
}

// MapSignalToJunction 保存信号灯id到路口id的映射（旧版导入路径），BeginPlay时解析
func (c *TrafficController) MapSignalToJunction(signalID, junctionID string) {
	c.signalToJunctionID[signalID] = junctionID
}

// LinkSignal 直接建立信号灯到路口的映射（Datasmith导入路径）
func (c *TrafficController) LinkSignal(signalID string, j *junction.TrafficJunction) {
	c.signalToJunction[signalID] = j
}

// BeginPlay 开始运行前的准备
// 功能：恢复旧版导入没有保存的映射，并为没有控制器的路口设置控制器
// 参数：host-场景中的信号灯与路口组件，可以为nil
// 算法说明：
// 1. 没有注册任何信号灯时，以组件自身的id注册宿主中的全部信号灯
// 2. 信号灯到路口的映射为空时，按id索引宿主中的路口并注册，再按保存的id映射重建；
// 映射到未知路口id的信号灯告警并跳过
// 3. 为所有已注册路口设置控制器与观察者
func (c *TrafficController) BeginPlay(host SignalHost) {
	if host != nil && len(c.signals) == 0 {
		for _, s := range host.SignalComponents() {
			c.signals[s.ID()] = s
		}
	}
	if host != nil && len(c.signalToJunction) == 0 {
		for _, j := range host.JunctionComponents() {
			c.AddJunction(j)
		}
		signalIDs := lo.Keys(c.signalToJunctionID)
		sort.Strings(signalIDs)
		for _, signalID := range signalIDs {
			junctionID := c.signalToJunctionID[signalID]
			j, ok := c.junctionData[junctionID]
			if !ok {
				log.Warnf("Could not find junction %s for signal %s.", junctionID, signalID)
				continue
			}
			c.signalToJunction[signalID] = j
		}
	}
	for _, j := range c.junctions {
		if !j.HasController() {
			j.SetController(c)
		}
		if c.metrics != nil {
			j.SetObserver(c.metrics)
		}
	}
	log.Infof("traffic controller ready: %d signals, %d junctions", len(c.signals), len(c.junctions))
}

// SetSignalState 设置信号灯配置
// 功能：信号灯所属路口切换到对应的手动/自动模式，信号灯应用配置
// 参数：id-信号灯id，configuration-配置下标，manualControl-是否手动控制
// 说明：路口与信号灯分别查找，任何一个不存在都只告警
func (c *TrafficController) SetSignalState(id string, configuration int, manualControl bool) {
	c.setSignalState(SourceJunction, id, configuration, manualControl)
}

func (c *TrafficController) setSignalState(source, id string, configuration int, manualControl bool) {
	if j, ok := c.signalToJunction[id]; ok {
		j.SetMode(manualControl)
	} else {
		log.Warnf("Could not find junction for signal %s.", id)
	}
	s, ok := c.signals[id]
	if !ok || s == nil {
		log.Warnf("Failed to retrieve signal %s.", id)
		c.metrics.command(source, ResultMissingSignal)
		return
	}
	s.SetConfiguration(configuration)
	c.metrics.command(source, ResultApplied)
}

// SetSignalStateOpenDrive 按OpenDRIVE信号灯id设置配置，id无法解析时告警并忽略
func (c *TrafficController) SetSignalStateOpenDrive(odID int, configuration int, manualControl bool) {
	c.setSignalStateOpenDrive(SourceOpenDrive, odID, configuration, manualControl)
}

func (c *TrafficController) setSignalStateOpenDrive(source string, odID int, configuration int, manualControl bool) {
	id, ok := c.openDriveIDs[odID]
	if !ok {
		log.Warnf("Failed to find signal for id %d.", odID)
		c.metrics.command(source, ResultUnresolved)
		return
	}
	c.setSignalState(source, id, configuration, manualControl)
}

// Enqueue 缓存外部指令，可在任意协程调用，下一次Update开始时应用
func (c *TrafficController) Enqueue(cmd Command) {
	c.queue.push(cmd)
}

// Pending 尚未应用的外部指令数
func (c *TrafficController) Pending() int {
	return c.queue.len()
}

func (c *TrafficController) apply(cmd Command) {
	switch cmd.Kind {
	case SetSignalState:
		c.setSignalState(SourceExternal, cmd.SignalID, cmd.Configuration, cmd.ManualControl)
	case SetSignalStateOpenDrive:
		c.setSignalStateOpenDrive(SourceOpenDrive, cmd.OpenDriveID, cmd.Configuration, cmd.ManualControl)
	default:
		log.Warnf("unknown command kind %d", cmd.Kind)
	}
}

// Prepare 准备阶段，保存所有路口的快照
func (c *TrafficController) Prepare() {
	parallel.GoFor(c.junctions, func(j *junction.TrafficJunction) { j.Prepare() })
	c.metrics.setHeld(lo.CountBy(c.junctions, func(j *junction.TrafficJunction) bool {
		return j.State() == junction.Held
	}))
}

// Update 更新阶段
// 功能：先应用外部指令，再按注册顺序更新所有路口
// 参数：dt-时间步长
// 说明：路口广播在本次调用内同步到达信号灯
func (c *TrafficController) Update(dt float64) {
	for _, cmd := range c.queue.drain() {
		c.apply(cmd)
	}
	for _, j := range c.junctions {
		j.Update(dt)
	}
}

// Signal 根据id获取信号灯
func (c *TrafficController) Signal(id string) (*signal.TrafficSignal, bool) {
	s, ok := c.signals[id]
	return s, ok
}

// Junction 根据id获取路口
func (c *TrafficController) Junction(id string) (*junction.TrafficJunction, bool) {
	j, ok := c.junctionData[id]
	return j, ok
}

// JunctionOrError 根据id获取路口，不存在时返回错误
func (c *TrafficController) JunctionOrError(id string) (*junction.TrafficJunction, error) {
	if j, ok := c.junctionData[id]; !ok {
		return nil, fmt.Errorf("no id %s in junction data", id)
	} else {
		return j, nil
	}
}

// JunctionForSignal 信号灯所属路口
func (c *TrafficController) JunctionForSignal(signalID string) (*junction.TrafficJunction, bool) {
	j, ok := c.signalToJunction[signalID]
	return j, ok
}

// SignalIDs 已注册信号灯id（升序）
func (c *TrafficController) SignalIDs() []string {
	ids := lo.Keys(c.signals)
	sort.Strings(ids)
	return ids
}

// JunctionIDs 已注册路口id（注册顺序）
func (c *TrafficController) JunctionIDs() []string {
	return lo.Map(c.junctions, func(j *junction.TrafficJunction, _ int) string { return j.ID() })
}

// ResolveOpenDriveID 解析OpenDRIVE信号灯id
func (c *TrafficController) ResolveOpenDriveID(odID int) (string, bool) {
	id, ok := c.openDriveIDs[odID]
	return id, ok
}
