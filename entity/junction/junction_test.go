package junction_test

import (
	"fmt"
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/entity/junction"
	"github.com/OpenHUTB/carla-0.9.14/metadata"
	"github.com/OpenHUTB/carla-0.9.14/utils/randengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	id     string
	config int
	manual bool
}

// spyController 记录广播并像真实控制器一样回调路口的SetMode
type spyController struct {
	calls []call
	j     *junction.TrafficJunction
}

func (s *spyController) SetSignalState(id string, configuration int, manualControl bool) {
	s.calls = append(s.calls, call{id, configuration, manualControl})
	if s.j != nil {
		s.j.SetMode(manualControl)
	}
}

type spyObserver struct {
	advances [][2]int
}

func (o *spyObserver) OnAdvance(_ string, phase, interval int) {
	o.advances = append(o.advances, [2]int{phase, interval})
}

func interval(t float64, configs ...int) metadata.LightInterval {
	in := metadata.LightInterval{Time: t, SignalStates: make([]metadata.SignalState, 0)}
	for i, c := range configs {
		in.SignalStates = append(in.SignalStates, metadata.SignalState{ID: fmt.Sprintf("s%d", i), Configuration: c})
	}
	return in
}

// twoPhases 2个相位，各1个时段，时长5.0s与3.0s
func twoPhases() metadata.Junction {
	return metadata.Junction{ID: "j", SignalPhases: []metadata.SignalPhase{
		{Intervals: []metadata.LightInterval{interval(5.0, 2, 0)}},
		{Intervals: []metadata.LightInterval{interval(3.0, 0, 2)}},
	}}
}

func newJunction(data metadata.Junction) (*junction.TrafficJunction, *spyController) {
	j := junction.New(data.ID)
	c := &spyController{j: j}
	j.SetController(c)
	j.SetPhases(data)
	return j, c
}

func TestJunctionIdle(t *testing.T) {
	j := junction.New("j")
	assert.Equal(t, junction.Idle, j.State())
	assert.True(t, j.Dirty())
	assert.True(t, j.AutoMode())
	assert.False(t, j.HasController())

	j.SetPhases(metadata.Junction{ID: "j"})
	j.SetPhases(metadata.Junction{ID: "j", SignalPhases: []metadata.SignalPhase{{}}})
	assert.Equal(t, junction.Idle, j.State())
	assert.Empty(t, j.SignalIDs())

	c := &spyController{}
	j.SetController(c)
	j.Update(1)
	assert.Empty(t, c.calls)
	assert.Equal(t, 0, j.CurrentPhase())
	assert.True(t, j.Dirty())
}

func TestJunctionTwoPhaseScenario(t *testing.T) {
	j, c := newJunction(twoPhases())
	assert.Equal(t, junction.Cycling, j.State())
	assert.Equal(t, []string{"s0", "s1"}, j.SignalIDs())

	j.Update(5.1)
	assert.Equal(t, []call{{"s0", 2, false}, {"s1", 0, false}}, c.calls)
	assert.Equal(t, 1, j.CurrentPhase())
	assert.Equal(t, 0, j.CurrentInterval())
	assert.True(t, j.Dirty())
	assert.Equal(t, 0.0, j.Timer())

	j.Update(3.1)
	assert.Equal(t, []call{{"s0", 2, false}, {"s1", 0, false}, {"s0", 0, false}, {"s1", 2, false}}, c.calls)
	assert.Equal(t, 0, j.CurrentPhase())
	assert.Equal(t, 0, j.CurrentInterval())
	assert.True(t, j.Dirty())
	// 自身广播触发的SetMode(false)不会重置循环
	assert.Equal(t, junction.Cycling, j.State())
}

func TestJunctionOneTickLatency(t *testing.T) {
	j, c := newJunction(twoPhases())
	j.Update(1)
	assert.Len(t, c.calls, 2)
	assert.False(t, j.Dirty())
	j.Update(1)
	assert.Len(t, c.calls, 2)
	assert.InDelta(t, 2.0, j.Timer(), 1e-9)
	// 等于时长不切换，必须严格超过
	j.Update(3)
	assert.Equal(t, 0, j.CurrentPhase())
	j.Update(0.01)
	assert.Equal(t, 1, j.CurrentPhase())
	assert.Len(t, c.calls, 2)
	j.Update(0.01)
	assert.Len(t, c.calls, 4)
}

func TestJunctionReplacePhases(t *testing.T) {
	j, c := newJunction(twoPhases())
	j.Update(5.1)
	require.Equal(t, 1, j.CurrentPhase())

	// 新相位表比当前相位下标短
	j.SetPhases(metadata.Junction{ID: "j", SignalPhases: []metadata.SignalPhase{
		{Intervals: []metadata.LightInterval{interval(4.0, 1, 1)}},
	}})
	assert.Equal(t, 0, j.CurrentPhase())
	assert.Equal(t, 0, j.CurrentInterval())
	assert.Equal(t, 0.0, j.Timer())
	assert.True(t, j.Dirty())

	assert.NotPanics(t, func() { j.Update(0.1) })
	assert.Equal(t, []call{{"s0", 1, false}, {"s1", 1, false}}, c.calls[len(c.calls)-2:])
	j.Update(4.0)
	assert.Equal(t, 0, j.CurrentPhase())
	assert.True(t, j.Dirty())
}

func TestJunctionSetMode(t *testing.T) {
	j, c := newJunction(twoPhases())
	j.Update(1)
	j.Update(5)
	require.Equal(t, 1, j.CurrentPhase())
	j.Update(1)
	require.False(t, j.Dirty())

	j.SetMode(true)
	assert.Equal(t, junction.Held, j.State())
	assert.True(t, j.Dirty())
	phase, timer := j.CurrentPhase(), j.Timer()
	j.SetMode(true)
	assert.Equal(t, junction.Held, j.State())
	assert.Equal(t, phase, j.CurrentPhase())
	assert.Equal(t, timer, j.Timer())

	// Held状态下不计时也不广播
	n := len(c.calls)
	j.Update(100)
	assert.Equal(t, n, len(c.calls))
	assert.Equal(t, timer, j.Timer())

	j.SetMode(false)
	assert.Equal(t, junction.Cycling, j.State())
	assert.Equal(t, 0, j.CurrentPhase())
	assert.Equal(t, 0, j.CurrentInterval())
	assert.Equal(t, 0.0, j.Timer())
	j.Update(0.1)
	assert.Equal(t, call{"s1", 0, false}, c.calls[len(c.calls)-1])
}

func TestJunctionFullCycleWraparound(t *testing.T) {
	r := randengine.New(42)
	for round := 0; round < 50; round++ {
		data := metadata.Junction{ID: "j", SignalPhases: make([]metadata.SignalPhase, 0)}
		total := 0
		numPhases := 1 + r.Intn(5)
		for p := 0; p < numPhases; p++ {
			phase := metadata.SignalPhase{Intervals: make([]metadata.LightInterval, 0)}
			numIntervals := 1 + r.Intn(4)
			for i := 0; i < numIntervals; i++ {
				phase.Intervals = append(phase.Intervals, interval(0.5+r.Float64()*10, r.Intn(3)))
				total++
			}
			data.SignalPhases = append(data.SignalPhases, phase)
		}
		j, _ := newJunction(data)
		o := &spyObserver{}
		j.SetObserver(o)
		for step := 0; step < total; step++ {
			in := data.SignalPhases[j.CurrentPhase()].Intervals[j.CurrentInterval()]
			j.Update(in.Time + 0.01)
		}
		assert.Equal(t, 0, j.CurrentPhase())
		assert.Equal(t, 0, j.CurrentInterval())
		assert.Len(t, o.advances, total)
		assert.Equal(t, [2]int{0, 0}, o.advances[total-1])
	}
}

func TestJunctionSkipsEmptyPhase(t *testing.T) {
	data := metadata.Junction{ID: "j", SignalPhases: []metadata.SignalPhase{
		{Intervals: []metadata.LightInterval{interval(1, 0)}},
		{Intervals: []metadata.LightInterval{}},
		{Intervals: []metadata.LightInterval{interval(1, 1)}},
	}}
	j, _ := newJunction(data)
	j.Update(1.5)
	assert.Equal(t, 2, j.CurrentPhase())
	j.Update(1.5)
	assert.Equal(t, 0, j.CurrentPhase())
}

func TestJunctionSnapshot(t *testing.T) {
	j, _ := newJunction(twoPhases())
	j.Update(5.1)
	assert.Equal(t, 0, j.GetSnapshot().Phase)
	j.Prepare()
	s := j.GetSnapshot()
	assert.Equal(t, "j", s.ID)
	assert.Equal(t, 1, s.Phase)
	assert.Equal(t, junction.Cycling, s.State)
	assert.Equal(t, "cycling", s.State.String())

	j.SetMode(true)
	j.Prepare()
	assert.Equal(t, junction.Held, j.GetSnapshot().State)
}

func TestJunctionWithoutController(t *testing.T) {
	j := junction.New("j")
	j.SetPhases(twoPhases())
	assert.NotPanics(t, func() { j.Update(5.1) })
	assert.Equal(t, 1, j.CurrentPhase())
}
