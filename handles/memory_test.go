package handles

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
)

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory([]byte("hello"))

	buf := make([]byte, 3)
	n, err := m.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "hel" {
		t.Fatalf("got %q", buf[:n])
	}

	if _, err := m.Write([]byte("P!")); err != nil {
		t.Fatal(err)
	}
	content, err := m.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "helP!" {
		t.Fatalf("got %q", content)
	}

	if _, err := m.Read(buf); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}
}

func TestMemoryInitialIsCopied(t *testing.T) {
	initial := []byte("abc")
	m := NewMemory(initial)
	initial[0] = 'x'
	content, err := m.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "abc" {
		t.Fatalf("got %q", content)
	}
}

func TestMemorySeek(t *testing.T) {
	m := NewMemory([]byte("0123456789"))

	pos, err := m.Seek(-3, io.SeekEnd)
	if err != nil {
		t.Fatal(err)
	}
	if pos != 7 {
		t.Fatalf("got %v", pos)
	}
	rest, err := io.ReadAll(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "789" {
		t.Fatalf("got %q", rest)
	}

	if _, err := m.Seek(-1, io.SeekStart); !errors.Is(err, errNegativeOffset) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Seek(0, 42); err == nil {
		t.Fatal("should error")
	}

	// a write past the end fills the gap with zeros
	if _, err := m.Seek(2, io.SeekEnd); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 13 {
		t.Fatalf("got %v", m.Len())
	}
	content, _ := m.Bytes()
	if string(content) != "0123456789\x00\x00x" {
		t.Fatalf("got %q", content)
	}
}

func TestMemoryClose(t *testing.T) {
	m := NewMemory(nil)
	if m.Closed() {
		t.Fatal("should be open")
	}
	if typ := m.HandleType(); typ != TypeStream {
		t.Fatalf("got %v", typ)
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if !m.Closed() {
		t.Fatal("should be closed")
	}
	if typ := m.HandleType(); typ != TypeUnknown {
		t.Fatalf("got %v", typ)
	}

	if err := m.Close(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Read(make([]byte, 1)); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Write([]byte("a")); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Seek(0, io.SeekStart); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("got %v", err)
	}
	if _, err := m.Bytes(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("got %v", err)
	}

	var nilMemory *Memory
	if !nilMemory.Closed() {
		t.Fatal("nil stream should be closed")
	}
}

func TestMemoryConcurrentClose(t *testing.T) {
	m := NewMemory([]byte("data"))
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- m.Close()
		}()
	}
	wg.Wait()
	close(errs)
	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, os.ErrClosed) {
			t.Fatal(err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("closed %d times", succeeded)
	}
}

func TestMemoryIDs(t *testing.T) {
	a := NewMemory(nil)
	b := NewMemory(nil)
	if a.ID() == b.ID() {
		t.Fatal("ids should differ")
	}
	if a.String() == b.String() {
		t.Fatal("strings should differ")
	}
}
