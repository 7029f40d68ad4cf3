package entity

import (
	"github.com/OpenHUTB/carla-0.9.14/clock"
	"github.com/OpenHUTB/carla-0.9.14/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	Controller() ITrafficController
	RuntimeConfig() *config.RuntimeConfig
}
