package configs

import (
	"errors"
)

// FirstSet decodes the value at path from the first config that sets it.
// It returns nil when no config does, so an absent value is told apart
// from a zero one.
func FirstSet[T any](loader Loader, path string) *T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return nil
		}
		panic(err)
	}
	return &value
}
