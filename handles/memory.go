package handles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Memory is a readable, writable and seekable stream kept in memory.
type Memory struct {
	id     int64
	mu     sync.Mutex
	buf    []byte
	offset int64
	closed atomic.Bool
}

var (
	_ Handle             = new(Memory)
	_ Typed              = new(Memory)
	_ io.ReadWriteSeeker = new(Memory)
	_ io.Closer          = new(Memory)
)

var errNegativeOffset = errors.New("negative offset")

// NewMemory returns a stream holding a copy of initial, positioned at the start.
func NewMemory(initial []byte) *Memory {
	return &Memory{
		id:  nextID(),
		buf: append([]byte(nil), initial...),
	}
}

func (m *Memory) ID() int64 {
	return m.id
}

func (m *Memory) Closed() bool {
	if m == nil {
		return true
	}
	return m.closed.Load()
}

func (m *Memory) HandleType() string {
	if m.Closed() {
		return TypeUnknown
	}
	return TypeStream
}

func (m *Memory) String() string {
	return fmt.Sprintf("memory stream #%d", m.id)
}

func (m *Memory) errClosed(op string) error {
	return fmt.Errorf("%s: %s: %w", m, op, os.ErrClosed)
}

func (m *Memory) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return 0, m.errClosed("read")
	}
	if m.offset >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.offset:])
	m.offset += int64(n)
	return n, nil
}

func (m *Memory) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return 0, m.errClosed("write")
	}
	end := m.offset + int64(len(p))
	if end > int64(len(m.buf)) {
		// writing past the end after a seek leaves a zero filled gap
		m.buf = append(m.buf, make([]byte, end-int64(len(m.buf)))...)
	}
	copy(m.buf[m.offset:], p)
	m.offset = end
	return len(p), nil
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return 0, m.errClosed("seek")
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.offset + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("%s: seek: invalid whence %d", m, whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("%s: seek: %w", m, errNegativeOffset)
	}
	m.offset = abs
	return abs, nil
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buf)
}

// Bytes returns a copy of the whole stream content.
func (m *Memory) Bytes() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed.Load() {
		return nil, m.errClosed("bytes")
	}
	return append([]byte(nil), m.buf...), nil
}

func (m *Memory) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return m.errClosed("close")
	}
	m.mu.Lock()
	m.buf = nil
	m.offset = 0
	m.mu.Unlock()
	return nil
}
