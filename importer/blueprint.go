package importer

import (
	"fmt"

	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
)

// ComponentIndex 从组件模板树建立信号灯组件索引
// 功能：名称以uuid开头且有子节点的模板节点，以原始uuid匹配文本为键映射到其第一个子节点
// 说明：同一uuid出现多次时后出现的覆盖先出现的
func ComponentIndex(root *scene.Node) map[string]*scene.Node {
	index := make(map[string]*scene.Node)
	if root == nil {
		return index
	}
	root.Walk(func(n *scene.Node) bool {
		match, ok := scene.MatchUUID(n.Value.Name)
		if !ok {
			return true
		}
		if child := n.FirstChild(); child != nil {
			index[match] = child
		}
		return true
	})
	return index
}

// ImportBlueprint 以蓝图方式导入
// 功能：按组件模板树解析元数据，创建路口与信号灯组件；组件不注册到信控中心，由BeginPlay恢复
// 参数：ctrl-信控中心，data-元数据XML，root-组件模板树根节点，owner-蓝图实例Actor，odMap-OpenDRIVE信号id映射
// 返回：导入的组件，元数据无效时返回错误
// 算法说明：
// 1. 从模板树建立uuid到组件节点的索引，带索引解析元数据
// 2. 载入资产表
// 3. 为有相位数据的路口创建组件，保存信号灯id到路口id的映射
// 4. 为每个信号灯创建组件，按模板树解析灯泡组件名
// 5. 载入OpenDRIVE id映射
func ImportBlueprint(
	ctrl ISignalRegistry,
	data []byte,
	root *scene.Node,
	owner scene.Actor,
	odMap map[int]string,
	opts ...metadata.ParseOption,
) (*Scene, error) {
	index := ComponentIndex(root)
	md, err := metadata.Parse(data, append([]metadata.ParseOption{metadata.WithComponentIndex(index)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("import blueprint: %w", err)
	}
	ctrl.Init(md.SignalAssets)
	pattern := metadata.PatternOf(opts...)

	res := &Scene{
		Signals:   make([]*signal.TrafficSignal, 0),
		Junctions: make([]*junction.TrafficJunction, 0),
	}
	for _, jd := range md.Junctions {
		if !jd.HasPhases() {
			continue
		}
		j := junction.New(jd.ID)
		j.SetPhases(jd)
		res.Junctions = append(res.Junctions, j)
		for _, id := range jd.SignalIDs() {
			ctrl.MapSignalToJunction(id, jd.ID)
		}
	}
	ids, assets := signalAssets(md.Junctions)
	for _, id := range ids {
		s := signal.New(id, assets[id], owner)
		s.LegacyInit(id, assets[id], ctrl, index, pattern)
		res.Signals = append(res.Signals, s)
	}
	addOpenDriveMapping(ctrl, odMap)
	log.Infof("blueprint import: %d signals, %d junctions", len(res.Signals), len(res.Junctions))
	return res, nil
}
