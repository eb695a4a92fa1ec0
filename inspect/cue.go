package inspect

import (
	"context"
	"fmt"

	"github.com/reusee/typenames/configs"
	"github.com/reusee/typenames/cuenames"
	"github.com/reusee/typenames/logs"
)

// InspectCUE names the fields of the value at expr, or of the root when expr
// is empty.
type InspectCUE func(ctx context.Context, path string, expr string) ([]Row, error)

func (Module) InspectCUE(
	newSpan logs.NewSpan,
	logger logs.Logger,
) InspectCUE {
	return func(ctx context.Context, path string, expr string) (rows []Row, err error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "inspect cue", "path", path, "expr", expr)

		loader := configs.NewLoader([]string{path}, "")
		value, err := loader.LookupFirst(expr)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("lookup %q in %s: %w", expr, path, err))
		}

		for _, field := range cuenames.Fields(value) {
			rows = append(rows, Row{
				Source: path,
				Path:   joinPath(expr, field.Label),
				Name:   field.Name,
			})
		}

		warnUnknown(ctx, logger, rows)
		return rows, nil
	}
}
