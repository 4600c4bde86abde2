package capabilities

import (
	"github.com/joshp123/robosim/capabilities/estop"
	"github.com/joshp123/robosim/internal/core"
)

func init() {
	Register(func(deps Deps) core.Capability {
		return estop.NewCapability(deps.Robot)
	})
}
