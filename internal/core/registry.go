package core

import (
	"context"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
)

// RegistryService lists the robot capabilities compiled into the server.
// The set is fixed at startup.
type RegistryService struct {
	robotv1.UnimplementedRegistryServer

	capabilities []Capability
}

func NewRegistryService(capabilities []Capability) *RegistryService {
	return &RegistryService{capabilities: capabilities}
}

func (r *RegistryService) ListCapabilities(_ context.Context, _ *robotv1.ListCapabilitiesRequest) (*robotv1.ListCapabilitiesResponse, error) {
	resp := &robotv1.ListCapabilitiesResponse{}
	for _, c := range r.capabilities {
		manifest := c.Manifest()
		resp.Capabilities = append(resp.Capabilities, &robotv1.CapabilitySummary{
			CapabilityId: manifest.CapabilityID,
			DisplayName:  manifest.DisplayName,
			Version:      manifest.Version,
			Status:       string(c.Health()),
		})
	}

	return resp, nil
}

func (r *RegistryService) DescribeCapability(_ context.Context, req *robotv1.DescribeCapabilityRequest) (*robotv1.DescribeCapabilityResponse, error) {
	for _, c := range r.capabilities {
		manifest := c.Manifest()
		if manifest.CapabilityID != req.CapabilityId {
			continue
		}

		descriptor := &robotv1.CapabilityDescriptor{
			CapabilityId:  manifest.CapabilityID,
			DisplayName:   manifest.DisplayName,
			Version:       manifest.Version,
			Services:      manifest.Services,
			Description:   c.Description(),
			Status:        string(c.Health()),
			HealthMessage: c.HealthMessage(),
		}

		for _, d := range c.Dashboards() {
			descriptor.Dashboards = append(descriptor.Dashboards, &robotv1.Dashboard{
				Name: d.Name,
				Path: DashboardPath(manifest.CapabilityID, d.Name),
			})
		}

		return &robotv1.DescribeCapabilityResponse{Capability: descriptor}, nil
	}

	return &robotv1.DescribeCapabilityResponse{}, nil
}
