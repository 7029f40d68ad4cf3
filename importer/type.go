package importer

import (
	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
)

// 依赖倒置，表达导入过程对信控中心的接口需求

// ISignalRegistry 导入时使用的信控中心接口
type ISignalRegistry interface {
	signal.IAssetGetter
	junction.ISignalStateSetter

	Init(assets map[string]metadata.SignalAsset)
	AddSignal(id string, s *signal.TrafficSignal)
	AddOpenDriveIDMapping(odID int, uuid string)
	AddJunction(j *junction.TrafficJunction)
	MapSignalToJunction(signalID, junctionID string)
	LinkSignal(signalID string, j *junction.TrafficJunction)
}
