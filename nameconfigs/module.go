package nameconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typenames/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
