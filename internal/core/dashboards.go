package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DashboardPath is the HTTP path a capability dashboard is served on.
func DashboardPath(capabilityID, name string) string {
	return "/dashboards/" + capabilityID + "/" + name + ".json"
}

// ValidateDashboards checks that every embedded dashboard is a JSON object
// with a title, which Grafana requires to provision it.
func ValidateDashboards(capabilities []Capability) error {
	for _, capability := range capabilities {
		for _, dash := range capability.Dashboards() {
			var doc struct {
				Title string `json:"title"`
			}
			if err := json.Unmarshal(dash.JSON, &doc); err != nil {
				return fmt.Errorf("capability %s: dashboard %s: %w", capability.ID(), dash.Name, err)
			}
			if doc.Title == "" {
				return fmt.Errorf("capability %s: dashboard %s has no title", capability.ID(), dash.Name)
			}
		}
	}
	return nil
}

// DashboardsMap materializes dashboard content to URL paths.
func DashboardsMap(capabilities []Capability) map[string][]byte {
	result := make(map[string][]byte)
	for _, capability := range capabilities {
		for _, dash := range capability.Dashboards() {
			result[DashboardPath(capability.ID(), dash.Name)] = dash.JSON
		}
	}
	return result
}

// WriteDashboards writes dashboards to dir/<capability>/<name>.json for
// Grafana file provisioning. An empty dir disables writing.
func WriteDashboards(dir string, capabilities []Capability) error {
	if dir == "" {
		return nil
	}
	if err := ValidateDashboards(capabilities); err != nil {
		return err
	}

	for _, capability := range capabilities {
		capDir := filepath.Join(dir, capability.ID())
		for _, dash := range capability.Dashboards() {
			if err := os.MkdirAll(capDir, 0o755); err != nil {
				return fmt.Errorf("create dashboard dir: %w", err)
			}
			path := filepath.Join(capDir, dash.Name+".json")
			if err := os.WriteFile(path, dash.JSON, 0o644); err != nil {
				return fmt.Errorf("write dashboard %s: %w", path, err)
			}
		}
	}

	return nil
}
