package vars

import "strings"

// ParseBool accepts the spellings people type on command lines and in
// environment variables. ok is false for anything else.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

func StrToBool(str string) bool {
	value, _ := ParseBool(str)
	return value
}

// FirstSet returns the value behind the first non-nil pointer.
func FirstSet[T any](ptrs ...*T) (ret T, ok bool) {
	for _, ptr := range ptrs {
		if ptr != nil {
			return *ptr, true
		}
	}
	return
}
