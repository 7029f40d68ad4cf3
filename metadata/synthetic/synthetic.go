// 随机生成结构合法的RoadRunner信号灯元数据与对应的OpenDRIVE信号映射
package synthetic

import (
	"fmt"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/utils/randengine"
	"github.com/samber/lo"
)

// 配置下标，两种资产共用前三个
const (
	ConfigurationRed = iota
	ConfigurationYellow
	ConfigurationGreen
	ConfigurationArrow // 仅箭头灯资产
)

// Options 生成参数
type Options struct {
	Junctions    int     // 路口数
	MinSignals   int     // 每个路口最少信号灯数
	MaxSignals   int     // 每个路口最多信号灯数
	GreenTime    float64 // 绿灯时段基准时长（秒），实际在[0.5, 1.5)倍之间
	YellowTime   float64 // 黄灯时段时长（秒）
	ArrowShare   float64 // 使用箭头灯资产的信号灯比例，[0, 1]
	AllRedChance float64 // 每个相位末尾追加全红清空时段的概率
	AllRedTime   float64 // 全红清空时段时长（秒）
	OpenDriveID0 int     // 第一个OpenDRIVE信号id
}

// DefaultOptions 默认生成参数
func DefaultOptions() Options {
	return Options{
		Junctions:    4,
		MinSignals:   2,
		MaxSignals:   4,
		GreenTime:    20,
		YellowTime:   3,
		ArrowShare:   0.25,
		AllRedChance: 0.5,
		AllRedTime:   2,
		OpenDriveID0: 1000,
	}
}

// Result 生成结果
type Result struct {
	Metadata *metadata.Metadata
	// Roads 道路id -> (OpenDRIVE信号id -> 信号灯uuid)，每个路口一条道路
	Roads map[string]map[int]string
}

// newAsset 每个配置只点亮同名灯泡的资产
// 说明：三色灯为Red、Yellow、Green；箭头灯额外有Arrow，灯泡名互不为前缀
func newAsset(id string, bulbs ...string) metadata.SignalAsset {
	configs := make([]metadata.SignalConfiguration, 0, len(bulbs))
	for i, name := range bulbs {
		states := make([]metadata.LightBulbState, 0, len(bulbs))
		for j, bulb := range bulbs {
			states = append(states, metadata.LightBulbState{Name: bulb, State: i == j})
		}
		configs = append(configs, metadata.SignalConfiguration{Name: name, LightBulbStates: states})
	}
	return metadata.SignalAsset{ID: id, SignalConfigurations: configs}
}

// Generate 生成元数据
// 算法说明：
// 1. 生成三色灯与箭头灯两个资产
// 2. 每个路口随机生成若干信号灯，按ArrowShare加权选择资产，每个信号灯对应一个相位
// 3. 相位由绿灯时段与黄灯时段组成：本相位的信号灯为绿（箭头灯为箭头）/黄，其余为红；
// 以AllRedChance的概率追加一个全红时段
// 4. 每个信号灯分配一个递增的OpenDRIVE信号id
func Generate(e *randengine.Engine, o Options) Result {
	assets := []metadata.SignalAsset{
		newAsset(e.UUID(), "Red", "Yellow", "Green"),
		newAsset(e.UUID(), "Red", "Yellow", "Green", "Arrow"),
	}
	greens := []int{ConfigurationGreen, ConfigurationArrow}
	share := min(max(o.ArrowShare, 0), 1)
	weights := []float64{1 - share, share}

	md := &metadata.Metadata{
		Version:      metadata.PluginVersion,
		SignalAssets: make(map[string]metadata.SignalAsset, len(assets)),
		Junctions:    make([]metadata.Junction, 0, o.Junctions),
	}
	roads := make(map[string]map[int]string, o.Junctions)
	odID := o.OpenDriveID0
	for k := 0; k < o.Junctions; k++ {
		signals := make([]string, e.RangeInt(o.MinSignals, o.MaxSignals))
		kinds := make(map[string]int32, len(signals))
		road := make(map[int]string, len(signals))
		for i := range signals {
			signals[i] = e.UUID()
			kinds[signals[i]] = e.DiscreteDistribution(weights)
			asset := assets[kinds[signals[i]]]
			md.SignalAssets[asset.ID] = asset
			road[odID] = signals[i]
			odID++
		}
		roads[fmt.Sprintf("road_%d", k)] = road

		states := func(active string, yellow bool) []metadata.SignalState {
			res := make([]metadata.SignalState, 0, len(signals))
			for _, id := range signals {
				c := ConfigurationRed
				if id == active {
					c = lo.Ternary(yellow, ConfigurationYellow, greens[kinds[id]])
				}
				res = append(res, metadata.SignalState{ID: id, SignalAssetID: assets[kinds[id]].ID, Configuration: c})
			}
			return res
		}
		phases := make([]metadata.SignalPhase, 0, len(signals))
		for _, active := range signals {
			intervals := []metadata.LightInterval{
				{Time: o.GreenTime * e.Between(0.5, 1.5), SignalStates: states(active, false)},
				{Time: o.YellowTime, SignalStates: states(active, true)},
			}
			if e.PTrue(o.AllRedChance) {
				intervals = append(intervals, metadata.LightInterval{Time: o.AllRedTime, SignalStates: states("", false)})
			}
			phases = append(phases, metadata.SignalPhase{Intervals: intervals})
		}
		md.Junctions = append(md.Junctions, metadata.Junction{ID: e.UUID(), SignalPhases: phases})
	}
	return Result{Metadata: md, Roads: roads}
}

// OpenDriveMap 将道路映射展平为OpenDRIVE信号id到信号灯uuid
func (r Result) OpenDriveMap() map[int]string {
	res := make(map[int]string)
	for _, road := range r.Roads {
		for od, id := range road {
			res[od] = id
		}
	}
	return res
}
