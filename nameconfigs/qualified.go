package nameconfigs

import (
	"github.com/reusee/typenames/cmds"
	"github.com/reusee/typenames/configs"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/vars"
)

// Qualified makes object names carry the full import path of their package.
type Qualified bool

var qualifiedSwitch = cmds.Switch("qualified")

func (Module) Qualified(
	loader configs.Loader,
	env configs.Env,
	logger logs.Logger,
) (ret Qualified) {
	defer func() {
		logger.Debug("qualified names", "enabled", bool(ret))
	}()
	value, _ := vars.FirstSet(
		*qualifiedSwitch,
		env.Bool("qualified"),
		configs.FirstSet[bool](loader, "qualified"),
	)
	return Qualified(value)
}
