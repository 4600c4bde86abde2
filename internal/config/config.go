// Package config loads the robosim YAML configuration, validates it against
// an embedded CUE schema and applies environment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/joshp123/robosim/internal/robot"
)

const (
	SchemaVersion      = 1
	DefaultPath        = "/etc/robosim/config.yaml"
	DefaultGRPCAddr    = "[::]:9000"
	DefaultHTTPAddr    = "0.0.0.0:8080"
	DefaultMaxWorkers  = 5
	DefaultUIDStartMax = 1_000_000
	DefaultTopicPrefix = "robots"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

//go:embed schema.cue
var schemaSource string

type Config struct {
	SchemaVersion int           `yaml:"schema_version"`
	Server        ServerConfig  `yaml:"server"`
	Robot         RobotConfig   `yaml:"robot"`
	MQTT          MQTTConfig    `yaml:"mqtt"`
	Logging       LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	GRPCAddr   string `yaml:"grpc_addr" env:"ROBOSIM_GRPC_ADDR"`
	HTTPAddr   string `yaml:"http_addr" env:"ROBOSIM_HTTP_ADDR"`
	MaxWorkers int    `yaml:"max_workers" env:"ROBOSIM_MAX_WORKERS"`
}

type RobotConfig struct {
	Templates        []robot.Template `yaml:"templates"`
	InitialPosition  Point            `yaml:"initial_position"`
	UIDStart         UIDRange         `yaml:"uid_start"`
	StopFailureOneIn int              `yaml:"stop_failure_one_in"`
	Seed             uint64           `yaml:"seed" env:"ROBOSIM_SEED"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// UIDRange is the half-open range [Min, Max) the first message UID is
// drawn from.
type UIDRange struct {
	Min uint64 `yaml:"min"`
	Max uint64 `yaml:"max"`
}

type MQTTConfig struct {
	Broker       string `yaml:"broker" env:"ROBOSIM_MQTT_BROKER"`
	TopicPrefix  string `yaml:"topic_prefix" env:"ROBOSIM_MQTT_TOPIC_PREFIX"`
	ClientID     string `yaml:"client_id"`
	Username     string `yaml:"username"`
	PasswordFile string `yaml:"password_file"`
	QoS          int    `yaml:"qos"`
}

// Enabled reports whether state publishing is configured.
func (m MQTTConfig) Enabled() bool {
	return strings.TrimSpace(m.Broker) != ""
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"ROBOSIM_LOG_LEVEL"`
	Format string `yaml:"format" env:"ROBOSIM_LOG_FORMAT"`
}

// DefaultTemplates is the catalogue used when none is configured.
func DefaultTemplates() []robot.Template {
	return []robot.Template{
		{Name: "Arnie", Model: "T-800", Description: "GOOD"},
		{Name: "Robert", Model: "T-1000", Description: "BAD"},
	}
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{SchemaVersion: SchemaVersion}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML config at path, validates it against the CUE schema,
// applies defaults and environment overrides, and validates the result. An
// empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{SchemaVersion: SchemaVersion}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := ValidateWithCue(path, data); err != nil {
			return nil, err
		}
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyDefaults(cfg)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateWithCue checks raw YAML against the embedded CUE schema.
func ValidateWithCue(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return fmt.Errorf("cannot build YAML config: %w", err)
	}

	final := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := final.Validate(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.GRPCAddr == "" {
		cfg.Server.GRPCAddr = DefaultGRPCAddr
	}
	if cfg.Server.HTTPAddr == "" {
		cfg.Server.HTTPAddr = DefaultHTTPAddr
	}
	if cfg.Server.MaxWorkers == 0 {
		cfg.Server.MaxWorkers = DefaultMaxWorkers
	}

	if len(cfg.Robot.Templates) == 0 {
		cfg.Robot.Templates = DefaultTemplates()
	}
	if cfg.Robot.UIDStart.Max == 0 {
		cfg.Robot.UIDStart.Max = DefaultUIDStartMax
	}
	if cfg.Robot.StopFailureOneIn == 0 {
		cfg.Robot.StopFailureOneIn = robot.DefaultStopFailureOneIn
	}

	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = DefaultTopicPrefix
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// Validate enforces required invariants beyond the schema.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if cfg.SchemaVersion != SchemaVersion {
		return fmt.Errorf("schema_version must be %d", SchemaVersion)
	}

	if cfg.Server.GRPCAddr == "" {
		return fmt.Errorf("server.grpc_addr is required")
	}
	if cfg.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	if cfg.Server.MaxWorkers < 1 {
		return fmt.Errorf("server.max_workers must be positive")
	}

	if len(cfg.Robot.Templates) == 0 {
		return fmt.Errorf("robot.templates is required")
	}
	for i, tmpl := range cfg.Robot.Templates {
		if tmpl.Name == "" || tmpl.Model == "" {
			return fmt.Errorf("robot.templates[%d] needs a name and a model", i)
		}
	}
	if cfg.Robot.InitialPosition.X < 0 || cfg.Robot.InitialPosition.Y < 0 {
		return fmt.Errorf("robot.initial_position must be non-negative")
	}
	if cfg.Robot.UIDStart.Max <= cfg.Robot.UIDStart.Min {
		return fmt.Errorf("robot.uid_start.max must be greater than robot.uid_start.min")
	}
	if cfg.Robot.StopFailureOneIn < 1 {
		return fmt.Errorf("robot.stop_failure_one_in must be at least 1")
	}

	if cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos must be 0, 1 or 2")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json", cfg.Logging.Format)
	}

	return nil
}

// RobotSettings converts the robot section for robot.New.
func (c *Config) RobotSettings() robot.Config {
	return robot.Config{
		Templates:        c.Robot.Templates,
		InitialPosition:  robot.Position{X: c.Robot.InitialPosition.X, Y: c.Robot.InitialPosition.Y},
		UIDStartMin:      c.Robot.UIDStart.Min,
		UIDStartMax:      c.Robot.UIDStart.Max,
		StopFailureOneIn: c.Robot.StopFailureOneIn,
		Seed:             c.Robot.Seed,
	}
}

// MQTTPassword reads the broker password from mqtt.password_file.
func (c *Config) MQTTPassword() (string, error) {
	if c.MQTT.PasswordFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.MQTT.PasswordFile)
	if err != nil {
		return "", fmt.Errorf("read mqtt password: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
