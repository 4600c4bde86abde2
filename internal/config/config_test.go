package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robosim.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Server.GRPCAddr != DefaultGRPCAddr || cfg.Server.MaxWorkers != DefaultMaxWorkers {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if len(cfg.Robot.Templates) != 2 || cfg.Robot.Templates[0].Name != "Arnie" {
		t.Fatalf("unexpected templates: %+v", cfg.Robot.Templates)
	}
	if cfg.Robot.UIDStart.Min != 0 || cfg.Robot.UIDStart.Max != DefaultUIDStartMax {
		t.Fatalf("unexpected uid range: %+v", cfg.Robot.UIDStart)
	}
	if cfg.Robot.StopFailureOneIn != 5 {
		t.Fatalf("unexpected stop failure denominator: %d", cfg.Robot.StopFailureOneIn)
	}
	if cfg.MQTT.Enabled() {
		t.Fatalf("mqtt must be disabled by default")
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
schema_version: 1
server:
  grpc_addr: "127.0.0.1:9100"
  max_workers: 8
robot:
  templates:
    - name: Rosie
      model: XB-500
      description: maid
  initial_position:
    x: 2
    y: 3.5
  uid_start:
    min: 100
    max: 200
  seed: 42
mqtt:
  broker: "tcp://localhost:1883"
  qos: 1
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Server.GRPCAddr != "127.0.0.1:9100" || cfg.Server.MaxWorkers != 8 {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.HTTPAddr != DefaultHTTPAddr {
		t.Fatalf("expected default http addr, got %q", cfg.Server.HTTPAddr)
	}

	settings := cfg.RobotSettings()
	if len(settings.Templates) != 1 || settings.Templates[0].Model != "XB-500" {
		t.Fatalf("unexpected templates: %+v", settings.Templates)
	}
	if settings.InitialPosition.X != 2 || settings.InitialPosition.Y != 3.5 {
		t.Fatalf("unexpected initial position: %+v", settings.InitialPosition)
	}
	if settings.UIDStartMin != 100 || settings.UIDStartMax != 200 || settings.Seed != 42 {
		t.Fatalf("unexpected robot settings: %+v", settings)
	}
	if !cfg.MQTT.Enabled() || cfg.MQTT.TopicPrefix != DefaultTopicPrefix {
		t.Fatalf("unexpected mqtt config: %+v", cfg.MQTT)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown key": `
schema_version: 1
server:
  grcp_addr: ":9000"
`,
		"negative position": `
schema_version: 1
robot:
  initial_position:
    x: -1
`,
		"bad log level": `
schema_version: 1
logging:
  level: verbose
`,
		"zero workers": `
schema_version: 1
server:
  max_workers: 0
`,
		"wrong schema version": `
schema_version: 2
`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadRequiresSchemaVersion(t *testing.T) {
	_, err := Load(writeConfig(t, "server:\n  grpc_addr: \":9000\"\n"))
	if err == nil || !strings.Contains(err.Error(), "schema_version") {
		t.Fatalf("expected schema_version error, got %v", err)
	}
}

func TestValidateUIDRange(t *testing.T) {
	cfg := Default()
	cfg.Robot.UIDStart = UIDRange{Min: 10, Max: 10}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for empty uid range")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROBOSIM_GRPC_ADDR", "127.0.0.1:7000")
	t.Setenv("ROBOSIM_MAX_WORKERS", "3")
	t.Setenv("ROBOSIM_SEED", "99")
	t.Setenv("ROBOSIM_MQTT_BROKER", "tcp://broker:1883")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Server.GRPCAddr != "127.0.0.1:7000" || cfg.Server.MaxWorkers != 3 {
		t.Fatalf("env overrides not applied: %+v", cfg.Server)
	}
	if cfg.Robot.Seed != 99 {
		t.Fatalf("expected seed 99, got %d", cfg.Robot.Seed)
	}
	if cfg.MQTT.Broker != "tcp://broker:1883" {
		t.Fatalf("expected broker override, got %q", cfg.MQTT.Broker)
	}
}

func TestMQTTPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mqtt-password")
	if err := os.WriteFile(path, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatalf("write password: %v", err)
	}
	cfg := Default()
	cfg.MQTT.PasswordFile = path
	password, err := cfg.MQTTPassword()
	if err != nil {
		t.Fatalf("MQTTPassword error: %v", err)
	}
	if password != "s3cret" {
		t.Fatalf("unexpected password: %q", password)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "robosim.example.yaml"))
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	if cfg.MQTT.Enabled() {
		t.Fatalf("example config must not enable mqtt")
	}
	if got := Default(); got.Server.GRPCAddr != cfg.Server.GRPCAddr || got.Robot.UIDStart != cfg.Robot.UIDStart {
		t.Fatalf("example config drifted from defaults: %+v", cfg)
	}
}
