// Package names names the type of arbitrary values with the vocabulary
// dynamic language runtimes use in their error messages: "null", "array",
// "boolean", "float", "integer", "string", "resource", "closed resource",
// or the concrete type name of an object.
package names

import (
	"reflect"

	"github.com/reusee/typenames/handles"
)

const (
	Null           = "null"
	Array          = "array"
	Boolean        = "boolean"
	Float          = "float"
	Integer        = "integer"
	String         = "string"
	Resource       = "resource"
	ClosedResource = "closed resource"
	Callable       = "callable"
	Channel        = "channel"
	Complex        = "complex"
	Pointer        = "pointer"
	// Mixed names a value that may be of several kinds.
	Mixed = "mixed"
	// Unknown means a kind of value no rule covers. Reaching it is a gap in
	// the namer, not a caller error.
	Unknown = "unknown"
)

// IsScalar reports whether name is one of the scalar names.
func IsScalar(name string) bool {
	switch name {
	case Boolean, Float, Integer, String:
		return true
	}
	return false
}

// Namer names values. The zero Namer names objects by package name and type
// name, as fmt's %T does.
type Namer struct {
	// Qualified names objects by full import path.
	Qualified bool
}

const maxDepth = 64

// Of names v with the zero Namer.
func Of(v any) string {
	return Namer{}.Name(v)
}

// Name never fails: every value gets exactly one name.
func (n Namer) Name(v any) string {
	if v == nil {
		return Null
	}

	value := reflect.ValueOf(v)
	if isNil(value) {
		return Null
	}

	// handles are mostly pointers to structs, probe before naming objects.
	// pointers are transparent.
	for depth := 0; ; depth++ {
		if name, ok := probe(value); ok {
			return name
		}
		if value.Kind() != reflect.Pointer && value.Kind() != reflect.Interface {
			break
		}
		if depth == maxDepth {
			// a chain this long is a cycle like p = &p
			return Pointer
		}
		value = value.Elem()
		if isNil(value) {
			return Null
		}
	}

	switch value.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return Array
	case reflect.Bool:
		return Boolean
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return Integer
	case reflect.Struct:
		return n.objectName(value.Type())
	case reflect.String:
		return String
	case reflect.Func:
		return Callable
	case reflect.Chan:
		return Channel
	case reflect.Complex64, reflect.Complex128:
		return Complex
	case reflect.UnsafePointer:
		return Pointer
	}

	return Unknown
}

func probe(value reflect.Value) (string, bool) {
	if !value.CanInterface() {
		return "", false
	}
	isHandle, closed := handles.Probe(value.Interface())
	if !isHandle {
		return "", false
	}
	if closed {
		return ClosedResource, true
	}
	return Resource, true
}

func (n Namer) objectName(t reflect.Type) string {
	if n.Qualified && t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// isNil reports nil for kinds that have no value when nil. Nil slices and
// maps are empty arrays, not absent values.
func isNil(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return value.IsNil()
	}
	return false
}
