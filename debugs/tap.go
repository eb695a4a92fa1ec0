package debugs

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
	"github.com/reusee/typenames/starnames"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on stdin with globals converted to Starlark
// values, plus the typename and memory builtins.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	namer names.Namer,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		var typeNames []any
		for _, name := range slices.Sorted(maps.Keys(globals)) {
			typeNames = append(typeNames, slog.String(name, namer.Name(globals[name])))
		}
		logger.InfoContext(ctx, "tap: "+what,
			slog.Group("globals", typeNames...),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := starnames.Builtins()
		for name, value := range globals {
			mappings[name] = toStarlarkValue(namer, value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
