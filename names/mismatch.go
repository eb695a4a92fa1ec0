package names

import "fmt"

// MismatchError reports a value of an unexpected type.
type MismatchError struct {
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("want %s, got %s", e.Want, e.Got)
}

// Mismatch names got and returns an error saying it is not a want.
func Mismatch(want string, got any) error {
	return &MismatchError{
		Want: want,
		Got:  Of(got),
	}
}

// Expect returns a MismatchError unless v is named want.
func (n Namer) Expect(want string, v any) error {
	got := n.Name(v)
	if got == want {
		return nil
	}
	return &MismatchError{
		Want: want,
		Got:  got,
	}
}
