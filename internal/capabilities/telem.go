package capabilities

import (
	"github.com/joshp123/robosim/capabilities/telem"
	"github.com/joshp123/robosim/internal/core"
)

func init() {
	Register(func(deps Deps) core.Capability {
		return telem.NewCapability(deps.Robot, deps.Metrics)
	})
}
