package nameconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/typenames/configs"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/modes"
)

//go:embed schema.cue
var schema string

const EnvPrefix = "TYPENAME_"

var filenames = []string{
	"typename.cue",
	".typename.cue",
}

// ConfigPaths lists existing config files, most local first.
func ConfigPaths() (paths []string) {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

func (Module) Env(
	mode modes.Mode,
	logger logs.Logger,
) configs.Env {
	if mode == modes.ModeDevelopment {
		return configs.Env{}
	}
	env, err := configs.NewEnv(EnvPrefix)
	if err != nil {
		logger.Warn("load environment", "error", err)
		return configs.Env{}
	}
	return env
}
