package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/reusee/typenames/inspect"
	"github.com/reusee/typenames/logs"
	"golang.org/x/sync/errgroup"
)

// Parallel is the number of jobs inspected at the same time.
type Parallel int

var parallelFlag int

func (Module) Parallel() Parallel {
	if parallelFlag > 0 {
		return Parallel(parallelFlag)
	}
	return Parallel(runtime.GOMAXPROCS(0))
}

// Run inspects jobs concurrently and writes rows in job order. Failed jobs
// are logged and do not stop the others.
type Run func(ctx context.Context, jobs []job, w io.Writer) ([]inspect.Row, error)

func (Module) Run(
	inspectYAML inspect.InspectYAML,
	inspectCUE inspect.InspectCUE,
	inspectStarlark inspect.InspectStarlark,
	inspectFile inspect.InspectFile,
	parallel Parallel,
	logger logs.Logger,
) Run {

	inspectJob := func(ctx context.Context, job job) ([]inspect.Row, error) {
		switch job.kind {
		case jobYAML:
			return inspectYAML(ctx, job.arg)
		case jobCUE:
			return inspectCUE(ctx, job.arg, job.expr)
		case jobStarlark:
			return inspectStarlark(ctx, job.arg)
		case jobFile:
			return inspectFile(ctx, job.arg)
		}
		panic(fmt.Errorf("bad job kind: %s", job.kind))
	}

	return func(ctx context.Context, jobs []job, w io.Writer) (all []inspect.Row, err error) {
		results := make([][]inspect.Row, len(jobs))
		errs := make([]error, len(jobs))
		group := new(errgroup.Group)
		group.SetLimit(max(int(parallel), 1))
		for i, job := range jobs {
			group.Go(func() error {
				// failures are per job, the group never cancels
				results[i], errs[i] = inspectJob(ctx, job)
				return nil
			})
		}
		_ = group.Wait()

		var failed int
		for i, job := range jobs {
			if errs[i] != nil {
				logger.ErrorContext(ctx, "inspect",
					"kind", job.kind,
					"arg", job.arg,
					"error", errs[i],
				)
				failed++
				continue
			}
			if err := inspect.WriteRows(w, results[i]); err != nil {
				return all, err
			}
			all = append(all, results[i]...)
		}
		if failed > 0 {
			return all, fmt.Errorf("%d of %d inspections failed", failed, len(jobs))
		}
		return all, nil
	}
}
