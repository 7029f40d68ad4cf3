package importer

import (
	"fmt"

	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
)

// ImportLevel 以关卡Actor方式导入
// 功能：路口直接设置控制器，信号灯挂在标签带uuid的Actor上并注册到信控中心
// 参数：ctrl-信控中心，data-元数据XML，root-导入的根Actor，odMap-OpenDRIVE信号id映射
// 返回：导入的组件，元数据无效时返回错误
// 算法说明：
// 1. 载入OpenDRIVE id映射与资产表
// 2. 为有相位数据的路口创建组件，保存信号灯id到路口id的映射
// 3. 以栈遍历根Actor及其挂接的全部Actor，标签以uuid开头且是已知信号灯的Actor上创建信号灯组件；
// 标志牌等其他uuid不处理
func ImportLevel(
	ctrl ISignalRegistry,
	data []byte,
	root scene.Actor,
	odMap map[int]string,
) (*Scene, error) {
	md, err := metadata.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("import level: %w", err)
	}
	addOpenDriveMapping(ctrl, odMap)
	ctrl.Init(md.SignalAssets)

	res := &Scene{
		Signals:   make([]*signal.TrafficSignal, 0),
		Junctions: make([]*junction.TrafficJunction, 0),
	}
	for _, jd := range md.Junctions {
		if !jd.HasPhases() {
			continue
		}
		j := junction.New(jd.ID)
		j.SetController(ctrl)
		j.SetPhases(jd)
		res.Junctions = append(res.Junctions, j)
		for _, id := range jd.SignalIDs() {
			ctrl.MapSignalToJunction(id, jd.ID)
		}
	}
	_, assets := signalAssets(md.Junctions)

	if root == nil {
		return res, nil
	}
	stack := []scene.Actor{root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = append(stack, curr.Children()...)

		id, ok := scene.ExtractSignalID(curr.Label())
		if !ok {
			continue
		}
		assetID, ok := assets[id]
		if !ok {
			continue
		}
		s := signal.New(id, assetID, curr)
		s.Init(id, assetID, ctrl)
		ctrl.AddSignal(id, s)
		res.Signals = append(res.Signals, s)
	}
	log.Infof("level import: %d signals, %d junctions", len(res.Signals), len(res.Junctions))
	return res, nil
}
