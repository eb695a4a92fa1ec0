package logs

import (
	"log/slog"

	"github.com/reusee/typenames/cmds"
	"github.com/reusee/typenames/modes"
)

// Level is the minimum level passed to the handlers.
type Level = *slog.LevelVar

var (
	level    = new(slog.LevelVar)
	levelSet bool
)

func setLevel(l slog.Level) {
	level.Set(l)
	levelSet = true
}

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		setLevel(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		setLevel(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		setLevel(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		setLevel(slog.LevelError)
	}).Desc("set log level to error"))
}

func (Module) Level(
	mode modes.Mode,
) Level {
	if !levelSet && mode == modes.ModeDevelopment {
		ret := new(slog.LevelVar)
		ret.Set(slog.LevelDebug)
		return ret
	}
	return level
}
