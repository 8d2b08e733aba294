package live

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned by Send and the control methods once the
// session no longer accepts outbound frames.
var ErrSessionClosed = errors.New("live: session closed")

// ConnectError is a failed handshake: bad credentials, an unreachable
// endpoint, or a refused upgrade.
type ConnectError struct {
	URL    string
	Status int
	Err    error
}

func (e *ConnectError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("live: connect %s: status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("live: connect %s: %v", e.URL, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// SendError is a failed delivery of an audio chunk or control frame.
// It is fatal to the session.
type SendError struct {
	Frame string // "audio" or the control message type
	Err   error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("live: send %s frame: %v", e.Frame, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// ProtocolError is an unexpected frame from the peer or an abrupt
// disconnect. It is fatal to the session.
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("live: protocol error: %s: %v", e.Reason, e.Err)
	}
	return "live: protocol error: " + e.Reason
}

func (e *ProtocolError) Unwrap() error { return e.Err }
