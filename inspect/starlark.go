package inspect

import (
	"context"

	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/starnames"
)

type InspectStarlark func(ctx context.Context, expr string) ([]Row, error)

func (Module) InspectStarlark(
	newSpan logs.NewSpan,
	logger logs.Logger,
) InspectStarlark {
	return func(ctx context.Context, expr string) ([]Row, error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "inspect starlark", "expr", expr)

		name, err := starnames.Eval(expr, nil)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		rows := []Row{{
			Source: "starlark",
			Path:   expr,
			Name:   name,
		}}

		warnUnknown(ctx, logger, rows)
		return rows, nil
	}
}
