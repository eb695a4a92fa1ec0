package inspect

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
	yamlv3 "go.yaml.in/yaml/v3"
)

// keys may contain dots, use a delimiter that never appears in them
const keyDelim = "\x00"

// InspectYAML names the top-level values of a YAML file: the keys of a
// mapping, the items of a sequence, or the root itself.
type InspectYAML func(ctx context.Context, path string) ([]Row, error)

func (Module) InspectYAML(
	namer names.Namer,
	newSpan logs.NewSpan,
	logger logs.Logger,
) InspectYAML {
	return func(ctx context.Context, path string) (rows []Row, err error) {
		ctx, _ = newSpan(ctx, "")
		logger.DebugContext(ctx, "inspect yaml", "path", path)

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("read %s: %w", path, err))
		}
		var root any
		if err := yamlv3.Unmarshal(content, &root); err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("decode %s: %w", path, err))
		}

		switch root := root.(type) {

		case map[string]any:
			k := koanf.New(keyDelim)
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, logs.WrapSpan(ctx, fmt.Errorf("load %s: %w", path, err))
			}
			raw := k.Raw()
			for _, key := range slices.Sorted(maps.Keys(raw)) {
				rows = append(rows, Row{
					Source: path,
					Path:   joinPath("", key),
					Name:   namer.Name(raw[key]),
				})
			}

		case []any:
			for i, item := range root {
				rows = append(rows, Row{
					Source: path,
					Path:   strconv.Itoa(i),
					Name:   namer.Name(item),
				})
			}

		}

		if len(rows) == 0 {
			// scalar, empty document or empty container
			rows = append(rows, Row{
				Source: path,
				Path:   ".",
				Name:   namer.Name(root),
			})
		}

		warnUnknown(ctx, logger, rows)
		return rows, nil
	}
}
