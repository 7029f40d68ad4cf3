package controller

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 指令来源
const (
	SourceJunction  = "junction"  // 路口循环广播
	SourceExternal  = "external"  // 外部按信号灯id下发
	SourceOpenDrive = "opendrive" // 外部按OpenDRIVE id下发
)

// 指令结果
const (
	ResultApplied       = "applied"
	ResultMissingSignal = "missing_signal"
	ResultUnresolved    = "unresolved"
)

// Metrics 信控相关的prometheus指标
type Metrics struct {
	gatherer prometheus.Gatherer

	Commands      *prometheus.CounterVec
	Advances      *prometheus.CounterVec
	HeldJunctions prometheus.Gauge
}

// NewMetrics 在reg上注册信控指标，reg为nil时使用默认注册表
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	commands, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadrunner_signal_commands_total",
		Help: "Signal state commands handled by the traffic controller, labeled by source and result.",
	}, []string{"source", "result"}), "roadrunner_signal_commands_total")
	if err != nil {
		return nil, err
	}
	advances, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadrunner_junction_interval_advances_total",
		Help: "Light interval advances, labeled by junction id.",
	}, []string{"junction"}), "roadrunner_junction_interval_advances_total")
	if err != nil {
		return nil, err
	}
	held, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roadrunner_junctions_held",
		Help: "Current number of junctions held by manual control.",
	}), "roadrunner_junctions_held")
	if err != nil {
		return nil, err
	}
	return &Metrics{
		gatherer:      gatherer,
		Commands:      commands,
		Advances:      advances,
		HeldJunctions: held,
	}, nil
}

// Handler /metrics处理器
func (m *Metrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) command(source, result string) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(source, result).Inc()
}

// OnAdvance 实现junction.IAdvanceObserver
func (m *Metrics) OnAdvance(junctionID string, _, _ int) {
	if m == nil {
		return
	}
	m.Advances.WithLabelValues(junctionID).Inc()
}

func (m *Metrics) setHeld(n int) {
	if m == nil {
		return
	}
	m.HeldJunctions.Set(float64(n))
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
