package importer

import (
	"fmt"
	"sort"

	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/samber/lo"
)

// 无渲染运行时根据元数据生成的内存场景

// SceneRootName 生成场景的根Actor标签
const SceneRootName = "RoadRunnerScene"

// BulbNames 资产中出现的所有灯泡名，按首次出现的顺序
func BulbNames(asset metadata.SignalAsset) []string {
	names := lo.FlatMap(asset.SignalConfigurations, func(c metadata.SignalConfiguration, _ int) []string {
		return lo.Map(c.LightBulbStates, func(b metadata.LightBulbState, _ int) string { return b.Name })
	})
	return lo.Uniq(names)
}

// signalLayout 参与生成的信号灯id（排序）与其资产
func signalLayout(md *metadata.Metadata) ([]string, map[string]metadata.SignalAsset) {
	ids, assets := signalAssets(md.Junctions)
	res := make(map[string]metadata.SignalAsset, len(ids))
	for _, id := range ids {
		res[id] = md.SignalAssets[assets[id]]
	}
	return ids, res
}

// SynthesizeBlueprint 生成蓝图方式的组件模板树与蓝图实例Actor
// 功能：每个信号灯生成模板节点"{uuid}_Signal"，其第一个子节点"SignalRoot_k"下为各灯泡节点"<灯泡名>_kNode_0"；
// 蓝图实例Actor上有与灯泡节点同名的组件
// 返回：模板树根节点与蓝图实例Actor
func SynthesizeBlueprint(md *metadata.Metadata) (*scene.Node, *scene.MemoryActor) {
	root := scene.NewNode("DefaultSceneRoot")
	owner := scene.NewMemoryActor(SceneRootName)
	ids, assets := signalLayout(md)
	for k, id := range ids {
		signalNode := root.AddChild(scene.NodeInfo{Name: id + "_Signal"})
		lampRoot := signalNode.AddChild(scene.NodeInfo{Name: fmt.Sprintf("SignalRoot_%d", k)})
		for _, bulb := range BulbNames(assets[id]) {
			name := fmt.Sprintf("%s_%dNode_0", bulb, k)
			lampRoot.AddChild(scene.NodeInfo{Name: name})
			owner.AddComponent(name)
		}
	}
	return root, owner
}

// signalActor 关卡中的信号灯Actor：标签以uuid开头，每个灯泡为带网格组件的子Actor
func signalActor(id string, asset metadata.SignalAsset) *scene.MemoryActor {
	a := scene.NewMemoryActor(id + "_Signal")
	for _, bulb := range BulbNames(asset) {
		a.Attach(scene.NewMemoryActor(bulb + "_Mesh")).AddComponent(scene.MeshComponentName)
	}
	return a
}

// SynthesizeLevel 生成关卡方式的Actor树
func SynthesizeLevel(md *metadata.Metadata) *scene.MemoryActor {
	root := scene.NewMemoryActor(SceneRootName)
	ids, assets := signalLayout(md)
	for _, id := range ids {
		root.Attach(signalActor(id, assets[id]))
	}
	return root
}

// SynthesizeDatasmith 生成Datasmith方式的Actor与用户数据
// 参数：md-元数据，odMap-OpenDRIVE信号id映射（用于写入OpenDriveId）
// 返回：资产表Actor、各信号灯Actor与路口数据Actor
func SynthesizeDatasmith(md *metadata.Metadata, odMap map[int]string) ([]DatasmithActor, error) {
	configs, err := metadata.WriteSignalAssets(md.SignalAssets)
	if err != nil {
		return nil, err
	}
	signalization, err := metadata.WriteSignalization(md.Junctions)
	if err != nil {
		return nil, err
	}
	// 同一信号灯有多个OpenDRIVE id时取最小的
	odIDs := lo.Keys(odMap)
	sort.Ints(odIDs)
	signalToOD := make(map[string]int)
	for _, od := range odIDs {
		if _, ok := signalToOD[odMap[od]]; !ok {
			signalToOD[odMap[od]] = od
		}
	}

	root := scene.NewMemoryActor(SceneRootName)
	actors := []DatasmithActor{{
		Actor:    root,
		UserData: map[string]string{KeySignalConfigurations: string(configs)},
	}}
	ids, assets := signalLayout(md)
	_, assetIDs := signalAssets(md.Junctions)
	for _, id := range ids {
		a := root.Attach(signalActor(id, assets[id]))
		userData := map[string]string{
			KeySignalID:      id,
			KeySignalAssetID: assetIDs[id],
		}
		if od, ok := signalToOD[id]; ok {
			userData[KeyOpenDriveID] = fmt.Sprint(od)
		}
		actors = append(actors, DatasmithActor{Actor: a, UserData: userData})
	}
	junctions := root.Attach(scene.NewMemoryActor("Signalization"))
	actors = append(actors, DatasmithActor{
		Actor:    junctions,
		UserData: map[string]string{KeySignalization: string(signalization)},
	})
	return actors, nil
}
