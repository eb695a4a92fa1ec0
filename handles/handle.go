// Package handles tells live resource handles from released ones.
//
// Handles created here record their own state. Descriptors owned by the
// standard library (files, connections, listeners) are probed through
// syscall.Conn without changing them.
package handles

import (
	"net"
	"os"
	"sync/atomic"
	"syscall"
)

// Handle is a resource that knows whether it has been released.
type Handle interface {
	Closed() bool
}

// Typed is implemented by handles that declare their resource type.
type Typed interface {
	HandleType() string
}

const (
	TypeStream = "stream"
	TypeSocket = "socket"
	// TypeUnknown is the type of every closed handle.
	TypeUnknown = "Unknown"
)

// connWrapper is implemented by connections layered on another one, like
// *tls.Conn.
type connWrapper interface {
	NetConn() net.Conn
}

// Probe reports whether v is a handle, and if so whether it was closed.
// Wrapped connections report the state of the innermost descriptor; state
// kept only by a wrapper is seen when the wrapper is a Handle, see Track.
func Probe(v any) (isHandle bool, closed bool) {
	switch v := v.(type) {
	case Handle:
		return true, v.Closed()
	case syscall.Conn:
		return true, descriptorClosed(v)
	case connWrapper:
		inner := v.NetConn()
		if inner == nil {
			return true, true
		}
		if isHandle, closed := Probe(inner); isHandle {
			return true, closed
		}
	}
	return false, false
}

func descriptorClosed(c syscall.Conn) bool {
	raw, err := c.SyscallConn()
	if err != nil {
		return true
	}
	// Control fails once the descriptor is released; the no-op leaves it as is
	return raw.Control(func(uintptr) {}) != nil
}

// TypeOf returns the resource type of a handle.
func TypeOf(v any) (string, bool) {
	isHandle, closed := Probe(v)
	if !isHandle {
		return "", false
	}
	if closed {
		return TypeUnknown, true
	}
	switch v := v.(type) {
	case Typed:
		return v.HandleType(), true
	case *os.File:
		return TypeStream, true
	case net.Conn, net.Listener, net.PacketConn:
		return TypeSocket, true
	}
	return TypeStream, true
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}
