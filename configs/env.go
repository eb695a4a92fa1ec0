package configs

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/reusee/typenames/vars"
)

// Env holds environment variables sharing a prefix, keyed by the lower cased
// remainder of their names. FOO_BAR_BAZ with prefix FOO_ becomes bar.baz.
type Env struct {
	k *koanf.Koanf
}

func NewEnv(prefix string) (Env, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, prefix)),
			"_", ".",
		)
	}), nil); err != nil {
		return Env{}, err
	}
	return Env{
		k: k,
	}, nil
}

func (e Env) String(key string) *string {
	if e.k == nil || !e.k.Exists(key) {
		return nil
	}
	value := e.k.String(key)
	return &value
}

// Bool returns nil when the variable is absent or not a boolean spelling.
func (e Env) Bool(key string) *bool {
	str := e.String(key)
	if str == nil {
		return nil
	}
	value, ok := vars.ParseBool(*str)
	if !ok {
		return nil
	}
	return &value
}
