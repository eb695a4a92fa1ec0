package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Describe(name string, desc string) {
	GlobalExecutor.Describe(name, desc)
}

// Execute runs args against the global executor, printing usage and exiting
// on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.SetOutput(os.Stderr)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
