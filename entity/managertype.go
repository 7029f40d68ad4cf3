package entity

import (
	"git.fiblab.net/sim/syncer/v3"
	"github.com/OpenHUTB/carla-0.9.14/entity/controller"
	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/entity/signal"
)

// Manager依赖倒置

// entity/controller/controller.go的依赖倒置
type ITrafficController interface {
	BeginPlay(host controller.SignalHost) // 导入完成后开始运行
	Register(sidecar *syncer.Sidecar)     // 注册到Sidecar

	// 立即设置信号灯配置（仿真协程内调用）
	SetSignalState(id string, configuration int, manualControl bool)
	// 按OpenDRIVE信号id立即设置信号灯配置（仿真协程内调用）
	SetSignalStateOpenDrive(odID int, configuration int, manualControl bool)
	// 指令入队，下一次Update开始时应用（可并发调用）
	Enqueue(cmd controller.Command)
	// 队列中等待应用的指令数
	Pending() int

	// 输入信号灯id，查找信号灯
	Signal(id string) (*signal.TrafficSignal, bool)
	// 输入路口id，查找路口
	Junction(id string) (*junction.TrafficJunction, bool)
	// 输入路口id，查找路口，如果不存在则返回error
	JunctionOrError(id string) (*junction.TrafficJunction, error)
	SignalIDs() []string                        // 已注册信号灯id（排序）
	JunctionIDs() []string                      // 已注册路口id（注册顺序）
	ResolveOpenDriveID(odID int) (string, bool) // OpenDRIVE信号id到信号灯id

	Prepare()          // 准备阶段
	Update(dt float64) // 更新阶段
}
