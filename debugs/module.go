package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
)

type Module struct {
	dscope.Module
	Logs  logs.Module
	Names names.Module
}
