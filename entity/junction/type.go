package junction

// 依赖倒置，表达junction对信控中枢的接口需求

// ISignalStateSetter 路口广播信号状态所需的控制器接口
type ISignalStateSetter interface {
	SetSignalState(id string, configuration int, manualControl bool)
}

// IAdvanceObserver 时段切换观察者（可选，用于统计）
type IAdvanceObserver interface {
	OnAdvance(junctionID string, phase, interval int)
}

// State 路口状态
type State int

const (
	// Idle 没有加载相位数据
	Idle State = iota
	// Cycling 自动按相位与时段循环
	Cycling
	// Held 手动控制，暂停自动循环
	Held
)

func (s State) String() string {
	switch s {
	case Cycling:
		return "cycling"
	case Held:
		return "held"
	default:
		return "idle"
	}
}
