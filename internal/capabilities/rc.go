package capabilities

import (
	"github.com/joshp123/robosim/capabilities/rc"
	"github.com/joshp123/robosim/internal/core"
)

func init() {
	Register(func(deps Deps) core.Capability {
		// A nil *MetricsCollector must not become a non-nil interface.
		if deps.Metrics == nil {
			return rc.NewCapability(deps.Robot, nil)
		}
		return rc.NewCapability(deps.Robot, deps.Metrics)
	})
}
