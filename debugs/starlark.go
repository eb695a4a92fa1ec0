package debugs

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/typenames/handles"
	"github.com/reusee/typenames/names"
	"github.com/reusee/typenames/starnames"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func toStarlarkValue(namer names.Namer, v any) starlark.Value {
	if sv, ok := v.(starlark.Value); ok {
		return sv
	}
	if isHandle, _ := handles.Probe(v); isHandle {
		return starnames.NewHandle(v)
	}

	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint64:
		return starlark.MakeUint64(v)

	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(namer, e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(namer, val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(namer, value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			key := iter.Key().Interface()
			elem := toStarlarkValue(namer, iter.Value().Interface())
			if err := d.SetKey(toStarlarkValue(namer, key), elem); err != nil {
				// unhashable in starlark, like structs with slice fields
				_ = d.SetKey(starlark.String(fmt.Sprint(key)), elem)
			}
		}
		return d

	case reflect.Struct:
		return newObject(namer, value)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(namer, elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	// channels, complex numbers and unsafe pointers are only named
	return &opaque{
		name: namer.Name(v),
		repr: fmt.Sprintf("%v", v),
	}
}

// object is a Go struct seen from Starlark. Exported fields are attributes,
// and the type is the struct's type name. Objects compare and hash by their
// exported fields.
type object struct {
	typeName string
	repr     string
	fields   starlark.StringDict
}

var (
	_ starlark.HasAttrs   = new(object)
	_ starlark.Comparable = new(object)
)

func newObject(namer names.Namer, value reflect.Value) *object {
	typ := value.Type()
	fields := make(starlark.StringDict)
	for i := range value.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		fields[field.Name] = toStarlarkValue(namer, value.Field(i).Interface())
	}
	return &object{
		typeName: namer.Name(value.Interface()),
		repr:     fmt.Sprintf("%+v", value.Interface()),
		fields:   fields,
	}
}

func (o *object) String() string       { return o.repr }
func (o *object) Type() string         { return o.typeName }
func (o *object) Freeze()              { o.fields.Freeze() }
func (o *object) Truth() starlark.Bool { return starlark.True }

func (o *object) Hash() (uint32, error) {
	h, err := starlark.String(o.typeName).Hash()
	if err != nil {
		return 0, err
	}
	for _, name := range o.AttrNames() {
		fieldHash, err := o.fields[name].Hash()
		if err != nil {
			return 0, fmt.Errorf("unhashable type: %s: field %s: %w", o.typeName, name, err)
		}
		h = h*31 + fieldHash
	}
	return h, nil
}

func (o *object) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other, ok := y.(*object)
	if !ok {
		return false, fmt.Errorf("%s %s %s not implemented", o.Type(), op, y.Type())
	}
	switch op {
	case syntax.EQL, syntax.NEQ:
		eq, err := o.equal(other, depth)
		if err != nil {
			return false, err
		}
		return eq == (op == syntax.EQL), nil
	}
	return false, fmt.Errorf("%s %s %s not implemented", o.Type(), op, y.Type())
}

func (o *object) equal(other *object, depth int) (bool, error) {
	if len(o.fields) != len(other.fields) {
		return false, nil
	}
	for name, value := range o.fields {
		otherValue, ok := other.fields[name]
		if !ok {
			return false, nil
		}
		eq, err := starlark.EqualDepth(value, otherValue, depth-1)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func (o *object) Attr(name string) (starlark.Value, error) {
	return o.fields[name], nil
}

func (o *object) AttrNames() []string {
	ret := o.fields.Keys()
	sort.Strings(ret)
	return ret
}

type opaque struct {
	name string
	repr string
}

func (o *opaque) String() string        { return o.repr }
func (o *opaque) Type() string          { return o.name }
func (o *opaque) Freeze()               {}
func (o *opaque) Truth() starlark.Bool  { return starlark.True }
func (o *opaque) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: %s", o.name) }
