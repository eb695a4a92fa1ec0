package handles

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Tracked wraps a closer whose own type cannot tell whether it was closed.
// The closed state is recorded before the inner closer is released.
type Tracked struct {
	id     int64
	inner  io.Closer
	closed atomic.Bool
}

var (
	_ Handle    = new(Tracked)
	_ Typed     = new(Tracked)
	_ io.Closer = new(Tracked)
)

func Track(c io.Closer) *Tracked {
	return &Tracked{
		id:    nextID(),
		inner: c,
	}
}

func (t *Tracked) ID() int64 {
	return t.id
}

func (t *Tracked) Unwrap() io.Closer {
	return t.inner
}

// Closed also reports inner handles closed without going through t.
func (t *Tracked) Closed() bool {
	if t == nil {
		return true
	}
	if t.closed.Load() {
		return true
	}
	if isHandle, closed := Probe(t.inner); isHandle && closed {
		return true
	}
	return false
}

func (t *Tracked) HandleType() string {
	if t.Closed() {
		return TypeUnknown
	}
	if typ, ok := TypeOf(t.inner); ok {
		return typ
	}
	return TypeStream
}

func (t *Tracked) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return fmt.Errorf("handle #%d: close: %w", t.id, os.ErrClosed)
	}
	if t.inner == nil {
		return nil
	}
	return t.inner.Close()
}
