// Package inspect names the values found in documents, expressions and files.
package inspect

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/names"
)

// Row is one named value. Path is "." for the root of a source.
type Row struct {
	Source string
	Path   string
	Name   string
}

func (r Row) String() string {
	return r.Source + "\t" + r.Path + "\t" + r.Name
}

func joinPath(base string, label string) string {
	switch {
	case base == "" && label == "":
		return "."
	case base == "":
		return label
	case label == "":
		return base
	}
	return base + "." + label
}

// WriteRows writes rows one per line.
func WriteRows(w io.Writer, rows []Row) error {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.String())
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

func warnUnknown(ctx context.Context, logger logs.Logger, rows []Row) {
	for _, row := range rows {
		if row.Name == names.Unknown {
			logger.WarnContext(ctx, "value without a name",
				"source", row.Source,
				"path", row.Path,
			)
		}
	}
}
