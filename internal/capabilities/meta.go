package capabilities

import (
	"github.com/joshp123/robosim/capabilities/meta"
	"github.com/joshp123/robosim/internal/core"
)

func init() {
	Register(func(deps Deps) core.Capability {
		return meta.NewCapability(deps.Robot)
	})
}
