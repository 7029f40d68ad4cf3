package signal

import (
	"regexp"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "signal")

// IAssetGetter 信号灯构造时查询资产定义的接口
type IAssetGetter interface {
	GetSignalAsset(assetID string) metadata.SignalAsset
}

// TrafficSignal 场景中的一个信号灯实例
// 功能：保存与资产配置一一对应的信号状态列表，并把选中的配置应用到可见组件上
type TrafficSignal struct {
	id      string
	assetID string
	owner   scene.Actor

	signalStates []metadata.SignalState
	current      int // 最近一次应用的配置，-1表示尚未应用

	unresolvedWarned bool // 组件解析失败只报告一次
}

// New 创建信号灯
// 参数：owner-信号灯所在的Actor，组件引用没有指定Actor时使用它
func New(id, assetID string, owner scene.Actor) *TrafficSignal {
	return &TrafficSignal{
		id:           id,
		assetID:      assetID,
		owner:        owner,
		signalStates: make([]metadata.SignalState, 0),
		current:      -1,
	}
}

func (s *TrafficSignal) ID() string {
	return s.id
}

func (s *TrafficSignal) AssetID() string {
	return s.assetID
}

func (s *TrafficSignal) Owner() scene.Actor {
	return s.owner
}

// AddSignalState 追加一个配置对应的信号状态
func (s *TrafficSignal) AddSignalState(state metadata.SignalState) {
	s.signalStates = append(s.signalStates, state)
}

// SignalStates 全部信号状态，下标即配置下标
func (s *TrafficSignal) SignalStates() []metadata.SignalState {
	return s.signalStates
}

// Configuration 最近一次成功应用的配置下标，-1表示尚未应用
func (s *TrafficSignal) Configuration() int {
	return s.current
}

// LegacyInit 按组件模板树初始化（蓝图导入路径）
// 功能：资产的每个配置生成一个信号状态，灯泡名在信号灯组件节点下按名称规则解析为组件名
// 参数：id-信号灯id，assetID-资产id，assets-资产查询，componentIndex-信号灯id到组件节点，p-匹配规则
// 说明：组件引用不指定Actor，应用配置时使用信号灯所在的Actor
func (s *TrafficSignal) LegacyInit(
	id, assetID string,
	assets IAssetGetter,
	componentIndex map[string]*scene.Node,
	p metadata.Pattern,
) {
	s.id = id
	s.assetID = assetID
	asset := assets.GetSignalAsset(assetID)
	node, found := componentIndex[id]
	if !found && len(asset.SignalConfigurations) > 0 {
		log.Warnf("Signal %s not found inside this blueprint.", id)
	}
	for index, config := range asset.SignalConfigurations {
		state := metadata.SignalState{
			ID:                  id,
			SignalAssetID:       assetID,
			Configuration:       index,
			LightInstanceStates: make([]metadata.LightInstanceState, 0, len(config.LightBulbStates)),
		}
		if found {
			for _, bulb := range config.LightBulbStates {
				name := metadata.ResolveLightName(node, bulb.Name, p)
				state.LightInstanceStates = append(state.LightInstanceStates, metadata.LightInstanceState{
					ComponentName: name,
					State:         bulb.State,
					Ref:           scene.NewComponentRef(s.owner, name),
				})
			}
		}
		s.AddSignalState(state)
	}
}

// Init 按挂接的灯泡Actor初始化（关卡导入路径）
// 功能：资产的每个配置生成一个信号状态，灯泡名匹配所在Actor后代中带网格组件的Actor标签（^name.*），
// 所有匹配的Actor都加入该配置
// 参数：id-信号灯id，assetID-资产id，assets-资产查询
func (s *TrafficSignal) Init(id, assetID string, assets IAssetGetter) {
	s.id = id
	s.assetID = assetID
	asset := assets.GetSignalAsset(assetID)
	var meshActors []scene.Actor
	if s.owner != nil {
		for _, a := range scene.Descendants(s.owner) {
			if _, ok := a.Component(scene.MeshComponentName); ok {
				meshActors = append(meshActors, a)
			}
		}
	}
	for index, config := range asset.SignalConfigurations {
		state := metadata.SignalState{
			ID:                  id,
			SignalAssetID:       assetID,
			Configuration:       index,
			LightInstanceStates: make([]metadata.LightInstanceState, 0),
		}
		for _, bulb := range config.LightBulbStates {
			re := regexp.MustCompile("^" + regexp.QuoteMeta(bulb.Name) + ".*")
			for _, a := range meshActors {
				if !re.MatchString(a.Label()) {
					continue
				}
				state.LightInstanceStates = append(state.LightInstanceStates, metadata.LightInstanceState{
					ComponentName: scene.MeshComponentName,
					State:         bulb.State,
					Ref:           scene.NewComponentRef(a, scene.MeshComponentName),
				})
			}
		}
		s.AddSignalState(state)
	}
}

// SetConfiguration 应用配置
// 功能：解析（并缓存）该配置下每个灯泡实例的组件并设置其可见性
// 参数：index-配置下标
// 说明：下标越界时告警并忽略；组件无法解析时每个信号灯只告警一次
func (s *TrafficSignal) SetConfiguration(index int) {
	if index < 0 || index >= len(s.signalStates) {
		log.Warnf("Invalid configuration %d for signal %s.", index, s.id)
		return
	}
	states := s.signalStates[index].LightInstanceStates
	for i := range states {
		c, ok := states[i].Ref.Resolve(s.owner)
		if !ok {
			if !s.unresolvedWarned {
				log.Warnf("Light State not set up properly in %s.", s.id)
				s.unresolvedWarned = true
			}
			continue
		}
		c.SetVisible(states[i].State)
	}
	s.current = index
}
