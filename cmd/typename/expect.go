package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/reusee/typenames/cmds"
	"github.com/reusee/typenames/inspect"
	"github.com/reusee/typenames/names"
)

var expectNames = cmds.Collect[string]("expect")

func init() {
	cmds.Describe("expect", "fail unless every row has this name; repeat to allow several")
}

func checkRows(rows []inspect.Row, want []string) error {
	var errs []error
	for _, row := range rows {
		if slices.Contains(want, row.Name) {
			continue
		}
		errs = append(errs, fmt.Errorf("%s %s: %w", row.Source, row.Path, &names.MismatchError{
			Want: strings.Join(want, " or "),
			Got:  row.Name,
		}))
	}
	return errors.Join(errs...)
}
