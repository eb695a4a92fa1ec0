package starnames

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/typenames/handles"
	"go.starlark.net/starlark"
)

// Handle exposes a resource handle to Starlark. Depending on what the
// handle implements it has read, write and close methods.
type Handle struct {
	h any
}

var (
	_ starlark.HasAttrs = new(Handle)
	_ handles.Handle    = new(Handle)
)

func NewHandle(h any) *Handle {
	return &Handle{
		h: h,
	}
}

func (h *Handle) Unwrap() any {
	return h.h
}

func (h *Handle) Closed() bool {
	_, closed := handles.Probe(h.h)
	return closed
}

func (h *Handle) String() string {
	typ, _ := handles.TypeOf(h.h)
	if s, ok := h.h.(fmt.Stringer); ok {
		return fmt.Sprintf("<resource %s of type %s>", s, typ)
	}
	return fmt.Sprintf("<resource of type %s>", typ)
}

func (h *Handle) Type() string {
	return "resource"
}

func (h *Handle) Freeze() {}

func (h *Handle) Truth() starlark.Bool {
	return !starlark.Bool(h.Closed())
}

func (h *Handle) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", h.Type())
}

func (h *Handle) Attr(name string) (starlark.Value, error) {
	switch name {
	case "read":
		if _, ok := h.h.(io.Reader); ok {
			return starlark.NewBuiltin(name, h.read).BindReceiver(h), nil
		}
	case "write":
		if _, ok := h.h.(io.Writer); ok {
			return starlark.NewBuiltin(name, h.write).BindReceiver(h), nil
		}
	case "close":
		if _, ok := h.h.(io.Closer); ok {
			return starlark.NewBuiltin(name, h.close).BindReceiver(h), nil
		}
	}
	return nil, nil
}

func (h *Handle) AttrNames() (ret []string) {
	if _, ok := h.h.(io.Closer); ok {
		ret = append(ret, "close")
	}
	if _, ok := h.h.(io.Reader); ok {
		ret = append(ret, "read")
	}
	if _, ok := h.h.(io.Writer); ok {
		ret = append(ret, "write")
	}
	return
}

func (h *Handle) read(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	n := -1
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n?", &n); err != nil {
		return nil, err
	}
	r := h.h.(io.Reader)
	if n < 0 {
		content, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		return starlark.String(content), nil
	}
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.String(buf[:got]), nil
}

func (h *Handle) write(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var data string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &data); err != nil {
		return nil, err
	}
	n, err := h.h.(io.Writer).Write([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.MakeInt(n), nil
}

func (h *Handle) close(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if err := h.h.(io.Closer).Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlark.None, nil
}

func memoryBuiltin() *starlark.Builtin {
	return starlark.NewBuiltin("memory", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var data string
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "data?", &data); err != nil {
			return nil, err
		}
		return NewHandle(handles.NewMemory([]byte(data))), nil
	})
}
