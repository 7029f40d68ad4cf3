package importer

import (
	"fmt"

	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/scene"
)

// Datasmith用户数据键
const (
	KeySignalConfigurations = "SignalConfigurations"
	KeySignalID             = "SignalId"
	KeySignalAssetID        = "SignalAssetId"
	KeyOpenDriveID          = "OpenDriveId"
	KeySignalization        = "Signalization"
)

// DatasmithActor 带Datasmith用户数据的Actor
type DatasmithActor struct {
	Actor    scene.Actor
	UserData map[string]string
}

// ImportDatasmith Datasmith导入
// 功能：从Actor的用户数据依次建立资产表、信号灯与路口
// 参数：ctrl-信控中心，actors-场景中的Actor
// 返回：导入的组件；资产表无效时返回错误
// 算法说明：
// 1. 第一个带SignalConfigurations的Actor提供资产表
// 2. 带SignalId与SignalAssetId的Actor上创建信号灯并注册，带OpenDriveId时同时注册OpenDRIVE id映射
// 3. 带Signalization的Actor提供路口数据，有相位数据的路口注册到信控中心，并直接映射其信号灯；
// 无效的路口数据记录错误并跳过
func ImportDatasmith(ctrl ISignalRegistry, actors []DatasmithActor) (*Scene, error) {
	res := &Scene{
		Signals:   make([]*signal.TrafficSignal, 0),
		Junctions: make([]*junction.TrafficJunction, 0),
	}
	initialized := false
	for _, a := range actors {
		value, ok := a.UserData[KeySignalConfigurations]
		if !ok {
			continue
		}
		assets, err := metadata.ParseSignalAssets([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("import datasmith signal configurations: %w", err)
		}
		ctrl.Init(assets)
		initialized = true
		break
	}
	if !initialized {
		log.Warn("no signal configurations found in datasmith user data")
		ctrl.Init(nil)
	}

	for _, a := range actors {
		id, ok1 := a.UserData[KeySignalID]
		assetID, ok2 := a.UserData[KeySignalAssetID]
		if !ok1 || !ok2 {
			continue
		}
		s := signal.New(id, assetID, a.Actor)
		s.Init(id, assetID, ctrl)
		ctrl.AddSignal(id, s)
		res.Signals = append(res.Signals, s)
		if od, ok := a.UserData[KeyOpenDriveID]; ok {
			ctrl.AddOpenDriveIDMapping(metadata.Atoi(od), id)
		}
	}

	for _, a := range actors {
		value, ok := a.UserData[KeySignalization]
		if !ok {
			continue
		}
		junctions, err := metadata.ParseSignalization([]byte(value))
		if err != nil {
			log.Errorf("Failed to parse signalization: %v", err)
			continue
		}
		for _, jd := range junctions {
			if !jd.HasPhases() {
				continue
			}
			j := junction.New(jd.ID)
			j.SetController(ctrl)
			j.SetPhases(jd)
			ctrl.AddJunction(j)
			res.Junctions = append(res.Junctions, j)
			for _, sid := range jd.SignalIDs() {
				ctrl.LinkSignal(sid, j)
			}
		}
	}
	log.Infof("datasmith import: %d signals, %d junctions", len(res.Signals), len(res.Junctions))
	return res, nil
}
