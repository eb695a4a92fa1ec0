package nameconfigs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/typenames/configs"
	"github.com/reusee/typenames/logs"
	"github.com/reusee/typenames/modes"
)

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		append([]any{
			func() logs.Writer {
				return new(bytes.Buffer)
			},
		}, defs...)...,
	)
}

func TestQualifiedDefault(t *testing.T) {
	newScope(t).Call(func(
		qualified Qualified,
	) {
		if qualified {
			t.Fatal("should default to false")
		}
	})
}

func TestQualifiedFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typename.cue")
	if err := os.WriteFile(path, []byte("qualified: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	newScope(t, func() configs.Loader {
		return configs.NewLoader([]string{path}, schema)
	}).Call(func(
		qualified Qualified,
	) {
		if !qualified {
			t.Fatal("should be set by config")
		}
	})
}

func TestQualifiedEnvOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typename.cue")
	if err := os.WriteFile(path, []byte("qualified: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix+"QUALIFIED", "false")
	env, err := configs.NewEnv(EnvPrefix)
	if err != nil {
		t.Fatal(err)
	}
	newScope(t,
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
		func() configs.Env {
			return env
		},
	).Call(func(
		qualified Qualified,
	) {
		if qualified {
			t.Fatal("env should override config")
		}
	})
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typename.cue")
	if err := os.WriteFile(path, []byte("qualifed: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{path}, schema)
	if _, err := loader.LookupFirst("qualified"); err == nil {
		t.Fatal("should error")
	}
}

func TestConfigPaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".typename.cue"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	paths := ConfigPaths()
	if len(paths) == 0 || paths[0] != filepath.Join(dir, ".typename.cue") {
		t.Fatalf("got %v", paths)
	}
}
