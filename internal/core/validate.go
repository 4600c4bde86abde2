package core

import (
	"fmt"
	"regexp"
)

var capabilityIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]+$`)

// ValidateCapabilities enforces basic capability contract invariants at startup.
func ValidateCapabilities(capabilities []Capability) error {
	seen := make(map[string]bool)
	services := make(map[string]string)
	for _, capability := range capabilities {
		id := capability.ID()
		manifest := capability.Manifest()
		if id == "" {
			return fmt.Errorf("capability id is empty")
		}
		if !capabilityIDPattern.MatchString(id) {
			return fmt.Errorf("capability id %q does not match %s", id, capabilityIDPattern.String())
		}
		if manifest.CapabilityID != id {
			return fmt.Errorf("capability id mismatch: id=%q manifest=%q", id, manifest.CapabilityID)
		}
		if seen[id] {
			return fmt.Errorf("duplicate capability id: %s", id)
		}
		seen[id] = true
		for _, svc := range manifest.Services {
			if owner, ok := services[svc]; ok {
				return fmt.Errorf("service %s claimed by both %s and %s", svc, owner, id)
			}
			services[svc] = id
		}
	}
	return nil
}
