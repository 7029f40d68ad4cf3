// 将RoadRunner信号灯元数据导入场景，创建信号灯与路口并接入信控中心
package importer

import (
	"fmt"
	"sort"

	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "importer")

// Mode 导入方式
type Mode string

const (
	// ModeBlueprint 导入为蓝图：组件模板树，信号灯与路口在BeginPlay时注册
	ModeBlueprint Mode = "blueprint"
	// ModeLevel 导入为关卡Actor：信号灯挂在带uuid标签的Actor上
	ModeLevel Mode = "level"
	// ModeDatasmith Datasmith导入：数据来自Actor的用户数据
	ModeDatasmith Mode = "datasmith"
)

// ParseMode 解析导入方式，空字符串为ModeLevel
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeLevel, nil
	case ModeBlueprint, ModeLevel, ModeDatasmith:
		return m, nil
	default:
		return "", fmt.Errorf("unknown import mode %q, must be one of blueprint|level|datasmith", s)
	}
}

// Scene 导入得到的信号灯与路口组件，实现controller.SignalHost
type Scene struct {
	Signals   []*signal.TrafficSignal
	Junctions []*junction.TrafficJunction
}

func (s *Scene) SignalComponents() []*signal.TrafficSignal {
	return s.Signals
}

func (s *Scene) JunctionComponents() []*junction.TrafficJunction {
	return s.Junctions
}

// signalAssets 有相位数据的路口所属信号灯id到资产id，按信号灯id排序
func signalAssets(junctions []metadata.Junction) ([]string, map[string]string) {
	m := (&metadata.Metadata{Junctions: junctions}).SignalToAsset()
	ids := lo.Keys(m)
	sort.Strings(ids)
	return ids, m
}

func addOpenDriveMapping(ctrl ISignalRegistry, odMap map[int]string) {
	ids := lo.Keys(odMap)
	sort.Ints(ids)
	for _, id := range ids {
		ctrl.AddOpenDriveIDMapping(id, odMap[id])
	}
}
