package live

import (
	"time"

	"github.com/gorilla/websocket"
)

// decode is the only reader on the connection. Each text frame becomes
// one Event on the events channel, in arrival order. A frame that
// fails to decode becomes a non-fatal ErrorEvent; the stream keeps
// going. Read errors end the stream: a clean close just closes the
// channel, anything else surfaces as a terminal ErrorEvent first.
func (s *Session) decode() {
	defer s.wg.Done()
	defer close(s.events)

	for {
		msgType, data, err := s.conn.read()
		if err != nil {
			if !s.State().terminal() {
				if websocket.IsCloseError(err,
					websocket.CloseNormalClosure,
					websocket.CloseGoingAway,
				) {
					s.closeClean()
					return
				}
				s.fail(&ProtocolError{Reason: "connection lost", Err: err})
			}
			s.emitTerminalIfFailed()
			return
		}

		switch msgType {
		case websocket.TextMessage:
			ev, derr := decodeEvent(data)
			if derr != nil {
				s.logger.Warn("undecodable frame", "error", derr)
				ev = &ErrorEvent{
					Description: "undecodable frame",
					Err:         derr,
				}
			}
			if !s.emit(ev) {
				s.emitTerminalIfFailed()
				return
			}

		case websocket.BinaryMessage:
			s.fail(&ProtocolError{Reason: "unexpected binary frame from server"})
			s.emitTerminalIfFailed()
			return
		}
	}
}

// emit delivers one event to the caller, at the caller's pace.
func (s *Session) emit(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

// emitTerminalIfFailed delivers the final error event of a failed
// session. The done channel is already closed by then, so this waits
// on the caller directly, bounded by the close timeout in case nobody
// is draining the stream anymore. Sessions ended by Close or a clean
// handshake terminate without a final event.
func (s *Session) emitTerminalIfFailed() {
	if s.State() != StateFailed {
		return
	}
	err := s.Err()

	timer := time.NewTimer(s.opts.closeTimeout())
	defer timer.Stop()
	select {
	case s.events <- &ErrorEvent{
		Description: err.Error(),
		Err:         err,
		Fatal:       true,
	}:
	case <-timer.C:
	}
}
