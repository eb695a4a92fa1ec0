package cmds

func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name to turn the flag on and !name to turn it off.
// The returned pointer stays nil until one of them is given.
func Switch(name string) **bool {
	var value *bool

	Define(name, Func(func() {
		on := true
		value = &on
	}).Desc("turn on "+name))

	Define("!"+name, Func(func() {
		off := false
		value = &off
	}).Desc("turn off "+name))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
