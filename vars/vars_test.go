package vars

import "testing"

func TestParseBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"N":     false,
		"off":   false,
		"0":     false,
	} {
		value, ok := ParseBool(str)
		if !ok {
			t.Fatalf("%q not parsed", str)
		}
		if value != expected {
			t.Fatalf("%q: got %v", str, value)
		}
	}
	if _, ok := ParseBool("maybe"); ok {
		t.Fatal("should not parse")
	}
	if StrToBool("maybe") {
		t.Fatal("should be false")
	}
}

func TestFirstSet(t *testing.T) {
	yes := true
	no := false
	value, ok := FirstSet(nil, &no, &yes)
	if !ok || value {
		t.Fatalf("got %v %v", value, ok)
	}
	_, ok = FirstSet[bool](nil, nil)
	if ok {
		t.Fatal("should be unset")
	}
}
