// Package starnames names Starlark values with the vocabulary of package names.
package starnames

import (
	"fmt"
	"maps"

	"github.com/reusee/typenames/handles"
	"github.com/reusee/typenames/names"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func Name(v starlark.Value) string {
	if v == nil {
		return names.Null
	}

	if isHandle, closed := handles.Probe(v); isHandle {
		if closed {
			return names.ClosedResource
		}
		return names.Resource
	}

	switch v.(type) {
	case starlark.NoneType:
		return names.Null
	case *starlark.List, starlark.Tuple, *starlark.Dict, *starlark.Set:
		return names.Array
	case starlark.Bool:
		return names.Boolean
	case starlark.Float:
		return names.Float
	case starlark.Int:
		return names.Integer
	case starlark.String, starlark.Bytes:
		return names.String
	case starlark.Indexable, starlark.IterableMapping:
		// range and host sequences; strings are indexable too and matched above
		return names.Array
	case starlark.Callable:
		return names.Callable
	}

	return v.Type()
}

func Builtin() *starlark.Builtin {
	return starlark.NewBuiltin("typename", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var v starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &v); err != nil {
			return nil, err
		}
		return starlark.String(Name(v)), nil
	})
}

// Builtins returns typename and memory, for predeclaring in programs.
func Builtins() starlark.StringDict {
	return starlark.StringDict{
		"typename": Builtin(),
		"memory":   memoryBuiltin(),
	}
}

var fileOptions = &syntax.FileOptions{
	Set: true,
}

// Eval evaluates a Starlark expression and names the result.
func Eval(src string, predeclared starlark.StringDict) (string, error) {
	env := Builtins()
	maps.Copy(env, predeclared)
	thread := &starlark.Thread{
		Name: "typename",
	}
	value, err := starlark.EvalOptions(fileOptions, thread, "<expr>", src, env)
	if err != nil {
		return "", fmt.Errorf("eval %q: %w", src, err)
	}
	return Name(value), nil
}
