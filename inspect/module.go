package inspect

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
)

type Module struct {
	dscope.Module
	Names names.Module
	Logs  logs.Module
}
