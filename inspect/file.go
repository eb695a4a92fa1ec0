package inspect

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
)

// InspectFile opens path and names the handle before and after closing it.
type InspectFile func(ctx context.Context, path string) ([]Row, error)

func (Module) InspectFile(
	namer names.Namer,
	newSpan logs.NewSpan,
	logger logs.Logger,
) InspectFile {
	return func(ctx context.Context, path string) (rows []Row, err error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "inspect file", "path", path)

		f, err := os.Open(path)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("open: %w", err))
		}
		rows = append(rows, Row{
			Source: path,
			Path:   "open",
			Name:   namer.Name(f),
		})

		if err := f.Close(); err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("close %s: %w", path, err))
		}
		rows = append(rows, Row{
			Source: path,
			Path:   "closed",
			Name:   namer.Name(f),
		})

		warnUnknown(ctx, logger, rows)
		return rows, nil
	}
}
