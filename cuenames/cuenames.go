// Package cuenames names CUE values with the vocabulary of package names.
package cuenames

import (
	"cuelang.org/go/cue"
	"github.com/reusee/typenames/names"
)

// Name names concrete values by their kind. Values that are not concrete are
// named by the kind they are constrained to, or Mixed when several kinds
// remain possible. Errors are Unknown.
func Name(v cue.Value) string {
	if !v.Exists() || v.Err() != nil {
		return names.Unknown
	}
	if kind := v.Kind(); kind != cue.BottomKind {
		return kindName(kind)
	}
	kind := v.IncompleteKind()
	if kind == cue.BottomKind {
		return names.Unknown
	}
	if kind&(kind-1) != 0 {
		return names.Mixed
	}
	return kindName(kind)
}

func kindName(kind cue.Kind) string {
	switch kind {
	case cue.NullKind:
		return names.Null
	case cue.ListKind, cue.StructKind:
		return names.Array
	case cue.BoolKind:
		return names.Boolean
	case cue.FloatKind:
		return names.Float
	case cue.IntKind:
		return names.Integer
	case cue.StringKind, cue.BytesKind:
		return names.String
	}
	return names.Unknown
}

// Field is a named value of a struct.
type Field struct {
	Label string
	Name  string
}

// Fields names the regular fields of a struct value, in order. Other values
// yield a single field with an empty label.
func Fields(v cue.Value) []Field {
	if v.IncompleteKind() != cue.StructKind {
		return []Field{{
			Name: Name(v),
		}}
	}
	iter, err := v.Fields(cue.Optional(true))
	if err != nil {
		return []Field{{
			Name: names.Unknown,
		}}
	}
	var ret []Field
	for iter.Next() {
		ret = append(ret, Field{
			Label: iter.Selector().String(),
			Name:  Name(iter.Value()),
		})
	}
	return ret
}
