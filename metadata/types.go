// RoadRunner信号灯元数据：XML解析结果的内存表示
package metadata

import (
	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/samber/lo"
)

const (
	// PluginVersion 本导入器支持的最高元数据版本
	PluginVersion = 4
	// SplitSchemaVersion 自该版本起信号灯资产与路口数据拆分为两个同级元素
	SplitSchemaVersion = 3
)

// LightBulbState 灯泡状态：一个具名灯泡在某个配置下是否点亮
type LightBulbState struct {
	Name  string
	State bool
}

// SignalConfiguration 信号灯资产的一种可选点亮方案（例如"Red"）
type SignalConfiguration struct {
	Name            string
	LightBulbStates []LightBulbState
}

// SignalAsset 信号灯资产：一类信号灯可以呈现的全部配置
// 说明：配置下标从0开始连续，是其他地方引用配置的唯一方式
type SignalAsset struct {
	ID                   string
	SignalConfigurations []SignalConfiguration
}

// LightInstanceState 灯泡名解析到具体场景组件后的状态
type LightInstanceState struct {
	ComponentName string
	State         bool
	Ref           scene.ComponentRef `cbor:"-"`
}

// SignalState 某个具体信号灯实例的一种完整点亮方案
type SignalState struct {
	ID                  string
	SignalAssetID       string
	Configuration       int
	LightInstanceStates []LightInstanceState
}

// LightInterval 相位中的一个定长时段
type LightInterval struct {
	Time         float64
	SignalStates []SignalState
}

// SignalPhase 信号相位
type SignalPhase struct {
	Intervals []LightInterval
}

// Junction 路口信控数据
type Junction struct {
	ID           string
	SignalPhases []SignalPhase
}

// HasPhases 第0相位是否至少有一个时段
func (j Junction) HasPhases() bool {
	return len(j.SignalPhases) > 0 && len(j.SignalPhases[0].Intervals) > 0
}

// SignalStates 第0相位第0时段的信号状态，即路口所属信号灯的全集
func (j Junction) SignalStates() []SignalState {
	if !j.HasPhases() {
		return nil
	}
	return j.SignalPhases[0].Intervals[0].SignalStates
}

// SignalIDs 路口所属信号灯id（来自第0相位第0时段）
func (j Junction) SignalIDs() []string {
	return lo.Map(j.SignalStates(), func(s SignalState, _ int) string { return s.ID })
}

// CycleTime 全部时段时长之和
func (j Junction) CycleTime() float64 {
	total := 0.
	for _, p := range j.SignalPhases {
		for _, in := range p.Intervals {
			total += in.Time
		}
	}
	return total
}

// Metadata 一次解析的规范化结果，与文档采用的结构版本无关
type Metadata struct {
	Version      int
	SignalAssets map[string]SignalAsset
	Junctions    []Junction
}

// OutOfDate 文档版本是否高于本导入器支持的版本
func (m *Metadata) OutOfDate() bool {
	return m.Version > PluginVersion
}

// SignalToAsset 信号灯id到信号灯资产id的映射（后写覆盖先写）
// 说明：只统计有相位数据的路口
func (m *Metadata) SignalToAsset() map[string]string {
	res := make(map[string]string)
	for _, j := range m.Junctions {
		for _, s := range j.SignalStates() {
			res[s.ID] = s.SignalAssetID
		}
	}
	return res
}
