package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/typenames/cmds"
	"github.com/reusee/typenames/debugs"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/modes"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var failed bool
	scope.Call(func(
		run Run,
		tapFunc debugs.Tap,
		logger logs.Logger,
	) {
		if len(jobs) == 0 && !tap {
			cmds.GlobalExecutor.SetOutput(os.Stderr)
			cmds.GlobalExecutor.PrintUsage()
			failed = true
			return
		}

		rows, err := run(ctx, jobs, os.Stdout)
		if err != nil {
			logger.ErrorContext(ctx, "run", "error", err)
			failed = true
		}

		if len(*expectNames) > 0 {
			if err := checkRows(rows, *expectNames); err != nil {
				logger.ErrorContext(ctx, "expect", "error", err)
				failed = true
			}
		}

		if tap {
			tapFunc(ctx, "rows", map[string]any{
				"rows": rows,
			})
		}
	})

	if failed {
		os.Exit(1)
	}
}
