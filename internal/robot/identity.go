package robot

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	firmwareSuffixLen = 6
	serialIDLen       = 20
	maxBatteryCells   = 4
	uppercaseLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Template is one entry of the configured robot catalogue.
type Template struct {
	Name        string `yaml:"name" json:"name"`
	Model       string `yaml:"model" json:"model"`
	Description string `yaml:"description" json:"description"`
}

// Identity is fixed at construction.
type Identity struct {
	Name            string `json:"name"`
	Model           string `json:"model"`
	Description     string `json:"description"`
	FirmwareVersion string `json:"firmware_version"`
	Birthday        string `json:"birthday"`
	SerialID        string `json:"serial_id"`
	BatteryType     string `json:"battery_type"`
}

func newIdentity(rng *rand.Rand, templates []Template, born time.Time) (Identity, error) {
	if len(templates) == 0 {
		return Identity{}, fmt.Errorf("at least one robot template is required")
	}
	tmpl := templates[rng.IntN(len(templates))]
	cells := rng.IntN(maxBatteryCells) + 1

	return Identity{
		Name:            tmpl.Name,
		Model:           tmpl.Model,
		Description:     tmpl.Description,
		FirmwareVersion: tmpl.Model + "-" + randomUpper(rng, firmwareSuffixLen),
		Birthday:        born.UTC().Format(time.RFC3339),
		SerialID:        randomUpper(rng, serialIDLen),
		BatteryType:     fmt.Sprintf("%dS-%s", cells, tmpl.Model),
	}, nil
}

func randomUpper(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(uppercaseLetters[rng.IntN(len(uppercaseLetters))])
	}
	return b.String()
}
