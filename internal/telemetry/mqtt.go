// Package telemetry fans robot state transitions out to Prometheus and MQTT.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/joshp123/robosim/internal/robot"
)

const (
	defaultQueueSize      = 256
	defaultPublishTimeout = 5 * time.Second
)

// MQTTConfig configures the state publisher.
type MQTTConfig struct {
	Broker      string
	TopicPrefix string
	ClientID    string
	Username    string
	Password    string
	QoS         byte
}

// publishClient is the slice of mqtt.Client the publisher needs.
type publishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// StatePayload is the JSON document published for each transition.
type StatePayload struct {
	Serial    string    `json:"serial"`
	Command   string    `json:"command"`
	Outcome   string    `json:"outcome"`
	UID       string    `json:"uid,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Mode      string    `json:"mode"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	LeftArm   string    `json:"left_arm"`
	RightArm  string    `json:"right_arm"`
}

// Publisher publishes robot events to MQTT. Observe never blocks: events
// queue on a buffered channel and are dropped when it is full.
type Publisher struct {
	client  publishClient
	prefix  string
	qos     byte
	events  chan robot.Event
	logger  *slog.Logger
	dropped atomic.Uint64
}

// NewPublisher connects to the configured broker.
func NewPublisher(cfg MQTTConfig, logger *slog.Logger) (*Publisher, error) {
	if strings.TrimSpace(cfg.Broker) == "" {
		return nil, fmt.Errorf("mqtt broker is required")
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "robosim-" + uuid.NewString()
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(10*time.Second) && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return newPublisher(client, cfg, logger), nil
}

func newPublisher(client publishClient, cfg MQTTConfig, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	prefix := strings.TrimSuffix(cfg.TopicPrefix, "/")
	if prefix == "" {
		prefix = "robots"
	}
	return &Publisher{
		client: client,
		prefix: prefix,
		qos:    cfg.QoS,
		events: make(chan robot.Event, defaultQueueSize),
		logger: logger,
	}
}

// Observe implements robot.Observer.
func (p *Publisher) Observe(e robot.Event) {
	select {
	case p.events <- e:
	default:
		if n := p.dropped.Add(1); n == 1 || n%100 == 0 {
			p.logger.Warn("mqtt queue full, dropping state events", "dropped", n)
		}
	}
}

// Run publishes queued events until ctx is done, then disconnects. Events
// still queued at shutdown are not sent.
func (p *Publisher) Run(ctx context.Context) error {
	defer p.client.Disconnect(250)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("mqtt publisher stopped",
				"dropped", p.dropped.Load(), "unsent", len(p.events))
			return nil
		case e := <-p.events:
			if err := p.publish(e); err != nil {
				p.logger.Warn("mqtt publish failed", "command", e.Command, "error", err)
			}
		}
	}
}

// Topic is the state topic for a robot serial.
func (p *Publisher) Topic(serial string) string {
	return p.prefix + "/" + serial + "/state"
}

func (p *Publisher) publish(e robot.Event) error {
	payload, err := json.Marshal(toStatePayload(e))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	token := p.client.Publish(p.Topic(e.Serial), p.qos, false, payload)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("publish timed out after %s", defaultPublishTimeout)
	}
	return token.Error()
}

func toStatePayload(e robot.Event) StatePayload {
	ts := e.Header.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return StatePayload{
		Serial:    e.Serial,
		Command:   e.Command,
		Outcome:   e.Outcome,
		UID:       e.Header.UID,
		Timestamp: ts.UTC(),
		Mode:      e.State.Mode.String(),
		X:         e.State.Position.X,
		Y:         e.State.Position.Y,
		LeftArm:   e.State.Arms.Left.String(),
		RightArm:  e.State.Arms.Right.String(),
	}
}
