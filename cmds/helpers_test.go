package cmds

import (
	"fmt"
	"testing"
)

func execute(t *testing.T, args []string) {
	t.Helper()
	if err := GlobalExecutor.Execute(args); err != nil {
		t.Fatal(err)
	}
}

func TestVar(t *testing.T) {
	a := Var[int]("TestVar.a")
	b := Var[string]("TestVar.b")
	execute(t, []string{
		"TestVar.a", "42",
		"TestVar.b", "bar",
	})
	if *a != 42 {
		t.Fatalf("got %v", *a)
	}
	if *b != "bar" {
		t.Fatalf("got %v", *b)
	}
	execute(t, []string{
		"TestVar.a.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	if *foo != nil {
		t.Fatal("should be unset")
	}
	execute(t, []string{
		"TestSwitch",
	})
	if *foo == nil || !**foo {
		t.Fatal("should be on")
	}
	execute(t, []string{
		"!TestSwitch",
	})
	if *foo == nil || **foo {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	execute(t, []string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestDescribe(t *testing.T) {
	Collect[string]("TestDescribe")
	Describe("TestDescribe", "collect things")
	if desc := GlobalExecutor.commands["TestDescribe"].Description; desc != "collect things" {
		t.Fatalf("got %q", desc)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		Describe("TestDescribe.undefined", "foo")
	}()
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	execute(t, []string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %v", *v)
	}
}
