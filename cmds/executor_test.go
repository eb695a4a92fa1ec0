package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %v", a)
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %v", a)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if err == nil || !strings.Contains(err.Error(), "got nothing") {
		t.Fatalf("got %v", err)
	}
}

func TestFuncError(t *testing.T) {
	executor := NewExecutor()
	errFoo := errors.New("foo")
	executor.Define("foo", Func(func() error {
		return errFoo
	}))
	executor.Define("bar", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"bar"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"foo"})
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatalf("got %v", bar)
	}
	if baz != 42 {
		t.Fatalf("got %v", baz)
	}

	// sub commands are not visible before their parent
	if err := executor.Execute([]string{"bar"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "bar" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func(s string) {}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n *int) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"foo\tFOO",
		"  bar <string>\tBAR",
		"  baz\tBAZ",
		"    qux [int]\tQUX",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in\n%s", expected, out)
		}
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases printed more than once\n%s", out)
	}
}

func TestFuncPanics(t *testing.T) {
	for name, fn := range map[string]any{
		"not func":     42,
		"variadic":     func(...int) {},
		"bad return":   func() int { return 0 },
		"many returns": func() (int, error) { return 0, nil },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("should panic")
				}
			}()
			Func(fn)
		})
	}
}
