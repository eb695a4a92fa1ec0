package names

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typenames/nameconfigs"
)

type Module struct {
	dscope.Module
	Configs nameconfigs.Module
}

func (Module) Namer(
	qualified nameconfigs.Qualified,
) Namer {
	return Namer{
		Qualified: bool(qualified),
	}
}
