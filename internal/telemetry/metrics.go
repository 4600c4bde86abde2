package telemetry

import (
	"strconv"

	"github.com/joshp123/robosim/internal/robot"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector tracks robot command outcomes and state. It is fed as a
// robot.Observer and scraped as a prometheus.Collector.
type MetricsCollector struct {
	commands      *prometheus.CounterVec
	controlFrames *prometheus.CounterVec
	mode          prometheus.Gauge
	position      *prometheus.GaugeVec
	arms          *prometheus.GaugeVec
	lastUID       prometheus.Gauge
	info          *prometheus.GaugeVec
}

func NewMetricsCollector() *MetricsCollector {
	c := &MetricsCollector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "robosim_commands_total",
			Help: "Handled robot commands by outcome",
		}, []string{"command", "outcome"}),
		controlFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "robosim_control_frames_total",
			Help: "Manual-control frames received (applied=true|false)",
		}, []string{"applied"}),
		mode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "robosim_mode",
			Help: "Current mode (0=UNKNOWN, 1=MANUAL, 2=GUIDED)",
		}),
		position: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "robosim_position",
			Help: "Current position by axis",
		}, []string{"axis"}),
		arms: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "robosim_arm_state",
			Help: "Arm state (0=UNKNOWN, 1=OPEN, 2=CLOSED)",
		}, []string{"arm"}),
		lastUID: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "robosim_last_uid",
			Help: "Last message UID stamped on a reply",
		}),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "robosim_info",
			Help: "Robot identity",
		}, []string{"name", "model", "firmware", "serial"}),
	}

	return c
}

// SetIdentity publishes the robot_info series. The robot is built with the
// collector as an observer, so its identity arrives afterwards.
func (c *MetricsCollector) SetIdentity(identity robot.Identity) {
	c.info.Reset()
	c.info.With(prometheus.Labels{
		"name":     identity.Name,
		"model":    identity.Model,
		"firmware": identity.FirmwareVersion,
		"serial":   identity.SerialID,
	}).Set(1)
}

// Observe implements robot.Observer.
func (c *MetricsCollector) Observe(e robot.Event) {
	c.commands.WithLabelValues(e.Command, e.Outcome).Inc()
	if e.Command == robot.CommandControl {
		c.controlFrames.WithLabelValues("true").Inc()
	}
	c.setState(e.State)
	if e.Header.UID != "" {
		if uid, err := strconv.ParseUint(e.Header.UID, 10, 64); err == nil {
			c.lastUID.Set(float64(uid))
		}
	}
}

// IgnoredFrame counts a control frame dropped by the mode gate.
func (c *MetricsCollector) IgnoredFrame() {
	c.controlFrames.WithLabelValues("false").Inc()
}

func (c *MetricsCollector) setState(state robot.State) {
	c.mode.Set(float64(state.Mode))
	c.position.WithLabelValues("x").Set(state.Position.X)
	c.position.WithLabelValues("y").Set(state.Position.Y)
	c.arms.WithLabelValues("left").Set(float64(state.Arms.Left))
	c.arms.WithLabelValues("right").Set(float64(state.Arms.Right))
}

func (c *MetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	c.commands.Describe(ch)
	c.controlFrames.Describe(ch)
	c.mode.Describe(ch)
	c.position.Describe(ch)
	c.arms.Describe(ch)
	c.lastUID.Describe(ch)
	c.info.Describe(ch)
}

func (c *MetricsCollector) Collect(ch chan<- prometheus.Metric) {
	c.commands.Collect(ch)
	c.controlFrames.Collect(ch)
	c.mode.Collect(ch)
	c.position.Collect(ch)
	c.arms.Collect(ch)
	c.lastUID.Collect(ch)
	c.info.Collect(ch)
}
