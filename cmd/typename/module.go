package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typenames/debugs"
	"github.com/reusee/typenames/inspect"
)

type Module struct {
	dscope.Module
	Inspect inspect.Module
	Debugs  debugs.Module
}
