package junction

import (
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "junction")

// junctionRuntime 路口运行时数据
type junctionRuntime struct {
	phase    int     // 当前相位下标
	interval int     // 当前时段下标
	timer    float64 // 当前时段已经过的时间
	autoMode bool    // true自动循环|false手动控制
	dirty    bool    // 下一次更新时需要广播当前时段的信号状态
}

// TrafficJunction 路口信控状态机
// 功能：按相位与时段定时循环，并通过控制器广播信号灯配置
// 说明：Idle（无相位数据）/Cycling（自动）/Held（手动）三种状态；
// 时段切换后的信号状态在下一次更新时才广播
type TrafficJunction struct {
	id         string
	controller ISignalStateSetter
	observer   IAdvanceObserver

	phases    []metadata.SignalPhase
	signalIDs []string

	runtime  junctionRuntime
	snapshot junctionRuntime // snapshot，用于保存输出的数据
}

// New 创建路口，初始为自动模式且需要广播
func New(id string) *TrafficJunction {
	j := &TrafficJunction{
		id:        id,
		phases:    make([]metadata.SignalPhase, 0),
		signalIDs: make([]string, 0),
		runtime:   junctionRuntime{autoMode: true, dirty: true},
	}
	j.snapshot = j.runtime
	return j
}

// ID 路口id
func (j *TrafficJunction) ID() string {
	return j.id
}

// SetID 设置路口id
func (j *TrafficJunction) SetID(id string) {
	j.id = id
}

// SetController 设置用于广播信号状态的控制器（非拥有引用）
func (j *TrafficJunction) SetController(c ISignalStateSetter) {
	j.controller = c
}

// HasController 是否已设置控制器
func (j *TrafficJunction) HasController() bool {
	return j.controller != nil
}

// SetObserver 设置时段切换观察者
func (j *TrafficJunction) SetObserver(o IAdvanceObserver) {
	j.observer = o
}

// SetPhases 载入相位数据
// 功能：保存相位表，并从第0相位第0时段得到路口所属信号灯id
// 参数：data-解析得到的路口数据
// 说明：第0相位没有任何时段时忽略本次调用；载入后从第0相位第0时段重新计时并在下一次更新时广播
func (j *TrafficJunction) SetPhases(data metadata.Junction) {
	if !data.HasPhases() {
		return
	}
	j.phases = data.SignalPhases
	j.signalIDs = data.SignalIDs()
	j.runtime.phase = 0
	j.runtime.interval = 0
	j.runtime.timer = 0
	j.runtime.dirty = true
}

// SetMode 设置手动/自动模式
// 功能：模式不变时不做任何事；进入手动模式时标记需要广播；
// 恢复自动模式时从第0相位第0时段重新开始
// 参数：manual-true为手动控制
func (j *TrafficJunction) SetMode(manual bool) {
	if j.runtime.autoMode != manual {
		return
	}
	j.runtime.autoMode = !manual
	if j.runtime.autoMode {
		j.runtime.phase = 0
		j.runtime.interval = 0
		j.runtime.timer = 0
		log.Debugf("junction %s resumes automatic cycling", j.id)
	} else {
		j.runtime.dirty = true
		log.Debugf("junction %s is held by manual control", j.id)
	}
}

// Prepare 准备阶段，将运行时数据写入snapshot
func (j *TrafficJunction) Prepare() {
	j.snapshot = j.runtime
}

// Update 更新阶段，执行路口信控的核心逻辑
// 参数：dt-时间步长
// 算法说明：
// 1. 非自动模式直接返回
// 2. 累加计时；没有相位或当前相位没有时段时返回
// 3. dirty时通过控制器广播当前时段的所有信号状态，随后清除dirty
// 4. 计时超过当前时段时长时切换到下一时段（时段用尽进入下一相位，相位用尽回到第0相位），
// 计时清零并标记dirty
func (j *TrafficJunction) Update(dt float64) {
	if !j.runtime.autoMode {
		return
	}
	j.runtime.timer += dt
	if len(j.phases) == 0 {
		return
	}
	phase := j.phases[j.runtime.phase]
	if len(phase.Intervals) == 0 {
		return
	}
	interval := phase.Intervals[j.runtime.interval]
	if j.runtime.dirty {
		if j.controller != nil {
			for _, s := range interval.SignalStates {
				j.controller.SetSignalState(s.ID, s.Configuration, false)
			}
		} else {
			log.Warnf("junction %s has no controller, skip broadcasting", j.id)
		}
		j.runtime.dirty = false
	}
	if j.runtime.timer > interval.Time {
		j.runtime.dirty = true
		j.runtime.timer = 0
		j.advance()
	}
}

// advance 切换到下一时段，跳过没有时段的相位
func (j *TrafficJunction) advance() {
	j.runtime.interval++
	if j.runtime.interval >= len(j.phases[j.runtime.phase].Intervals) {
		j.runtime.interval = 0
		for range j.phases {
			j.runtime.phase = (j.runtime.phase + 1) % len(j.phases)
			if len(j.phases[j.runtime.phase].Intervals) > 0 {
				break
			}
		}
	}
	if j.observer != nil {
		j.observer.OnAdvance(j.id, j.runtime.phase, j.runtime.interval)
	}
}

// State 当前状态
func (j *TrafficJunction) State() State {
	switch {
	case !j.runtime.autoMode:
		return Held
	case len(j.phases) == 0:
		return Idle
	default:
		return Cycling
	}
}

// CurrentPhase 当前相位下标
func (j *TrafficJunction) CurrentPhase() int {
	return j.runtime.phase
}

// CurrentInterval 当前时段下标
func (j *TrafficJunction) CurrentInterval() int {
	return j.runtime.interval
}

// Timer 当前时段已经过的时间
func (j *TrafficJunction) Timer() float64 {
	return j.runtime.timer
}

// Dirty 下一次更新时是否广播
func (j *TrafficJunction) Dirty() bool {
	return j.runtime.dirty
}

// AutoMode 是否自动模式
func (j *TrafficJunction) AutoMode() bool {
	return j.runtime.autoMode
}

// SignalIDs 路口所属信号灯id
func (j *TrafficJunction) SignalIDs() []string {
	return j.signalIDs
}

// Phases 相位表
func (j *TrafficJunction) Phases() []metadata.SignalPhase {
	return j.phases
}

// Snapshot 上一次Prepare时的状态快照
type Snapshot struct {
	ID       string
	State    State
	Phase    int
	Interval int
	Timer    float64
	AutoMode bool
}

// GetSnapshot 读取上一次Prepare时保存的快照
func (j *TrafficJunction) GetSnapshot() Snapshot {
	s := Snapshot{
		ID:       j.id,
		Phase:    j.snapshot.phase,
		Interval: j.snapshot.interval,
		Timer:    j.snapshot.timer,
		AutoMode: j.snapshot.autoMode,
	}
	switch {
	case !s.AutoMode:
		s.State = Held
	case len(j.phases) == 0:
		s.State = Idle
	default:
		s.State = Cycling
	}
	return s
}
