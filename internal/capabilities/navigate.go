package capabilities

import (
	"github.com/joshp123/robosim/capabilities/navigate"
	"github.com/joshp123/robosim/internal/core"
)

func init() {
	Register(func(deps Deps) core.Capability {
		return navigate.NewCapability(deps.Robot)
	})
}
