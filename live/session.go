// Package live implements streaming transcription over a persistent
// websocket session.
//
// A Session runs two goroutines against one connection: the pump, which
// forwards audio chunks and control frames to the server, and the
// decoder, which turns incoming frames into Events. The caller feeds
// audio with Send, ends the stream with Finish, and ranges over Events
// until it closes. The last value of a failed session is an ErrorEvent
// with Fatal set; a clean shutdown just closes the channel.
package live

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	deepgram "github.com/mbrock/deepgram-go"
)

const listenPath = "/v1/listen"

// State is the lifecycle state of a Session.
type State int32

const (
	StateConnecting State = iota
	StateOpen
	StateClosing
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s State) terminal() bool {
	return s == StateClosed || s == StateFailed
}

// Session is one live transcription stream, from handshake to close.
type Session struct {
	conn   *conn
	opts   *Options
	logger *log.Logger

	state atomic.Int32

	audio   chan []byte
	control chan controlMessage
	events  chan Event

	finish     chan struct{} // closed by Finish; pump drains and sends CloseStream
	done       chan struct{} // closed on teardown; unblocks everything
	finishOnce sync.Once
	downOnce   sync.Once

	errMu      sync.Mutex
	err        error
	closeTimer *time.Timer

	wg sync.WaitGroup
}

// Dial opens a live transcription session against the client's API
// host, negotiating the configuration in opts as query parameters.
func Dial(ctx context.Context, dg *deepgram.Client, opts *Options) (*Session, error) {
	if opts == nil {
		opts = &Options{}
	}

	s := &Session{
		opts:    opts,
		logger:  dg.Logger(),
		audio:   make(chan []byte),
		control: make(chan controlMessage),
		events:  make(chan Event),
		finish:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	s.state.Store(int32(StateConnecting))

	u := dg.StreamURL(listenPath, opts.Query())
	header := http.Header{}
	header.Set("Authorization", "Token "+dg.APIKey())

	conn, err := dialConn(ctx, u.String(), header)
	if err != nil {
		s.state.Store(int32(StateFailed))
		return nil, err
	}
	s.conn = conn
	s.state.Store(int32(StateOpen))
	s.logger.Debug("live session open", "url", u.Redacted())

	s.wg.Add(2)
	go s.pump()
	go s.decode()

	return s, nil
}

// State reports the session's lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Events is the stream of decoded transcript events, in frame arrival
// order. It is closed when the session ends, either cleanly or after a
// terminal ErrorEvent.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Err reports the session's fatal error, if any, once the event stream
// has ended.
func (s *Session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// Send hands one audio chunk to the pump. It blocks while the pump is
// still delivering earlier chunks (backpressure), and fails with
// ErrSessionClosed once Finish or Close has been called.
func (s *Session) Send(ctx context.Context, chunk []byte) error {
	if err := s.sendable(); err != nil {
		return err
	}
	select {
	case s.audio <- chunk:
		return nil
	case <-s.finish:
		return ErrSessionClosed
	case <-s.done:
		return s.terminalErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Finalize asks the server to flush and finalize its current transcript
// without ending the stream.
func (s *Session) Finalize() error {
	return s.sendControl(controlMessage{Type: msgFinalize})
}

// KeepAlive sends one keepalive frame. With Options.KeepAlive set the
// pump already does this during idle periods.
func (s *Session) KeepAlive() error {
	return s.sendControl(controlMessage{Type: msgKeepAlive})
}

func (s *Session) sendControl(msg controlMessage) error {
	if err := s.sendable(); err != nil {
		return err
	}
	select {
	case s.control <- msg:
		return nil
	case <-s.finish:
		return ErrSessionClosed
	case <-s.done:
		return s.terminalErr()
	}
}

func (s *Session) sendable() error {
	select {
	case <-s.finish:
		return ErrSessionClosed
	case <-s.done:
		return s.terminalErr()
	default:
		return nil
	}
}

func (s *Session) terminalErr() error {
	if err := s.Err(); err != nil {
		return err
	}
	return ErrSessionClosed
}

// Finish ends the audio stream gracefully: the pump flushes any
// in-flight chunk, sends the CloseStream frame, and the session stays
// open until the server has delivered its remaining results and closed
// the connection, or the close timeout elapses.
func (s *Session) Finish() error {
	if !s.transition(StateOpen, StateClosing) {
		return ErrSessionClosed
	}
	s.finishOnce.Do(func() {
		timer := time.AfterFunc(s.opts.closeTimeout(), func() {
			if s.State() == StateClosing {
				s.logger.Warn("close handshake timed out")
				s.closeAbrupt()
			}
		})
		s.errMu.Lock()
		s.closeTimer = timer
		s.errMu.Unlock()
		close(s.finish)
	})
	return nil
}

// Close tears the session down immediately. Both directions unblock
// and the event stream terminates; a session closed this way reports
// no error.
func (s *Session) Close() error {
	s.closeAbrupt()
	s.wg.Wait()
	return nil
}

func (s *Session) closeAbrupt() {
	for {
		st := s.State()
		if st.terminal() {
			break
		}
		if s.state.CompareAndSwap(int32(st), int32(StateClosed)) {
			break
		}
	}
	s.teardown(false)
}

// closeClean marks the shutdown handshake complete.
func (s *Session) closeClean() {
	for {
		st := s.State()
		if st.terminal() {
			break
		}
		if s.state.CompareAndSwap(int32(st), int32(StateClosed)) {
			break
		}
	}
	s.logger.Debug("live session closed")
	s.teardown(true)
}

// fail records the first fatal error and moves the session to Failed
// from whatever state it was in. Errors raised after the session has
// already settled are teardown noise and are dropped.
func (s *Session) fail(err error) {
	if s.State().terminal() {
		return
	}
	s.errMu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.errMu.Unlock()

	for {
		st := s.State()
		if st.terminal() {
			break
		}
		if s.state.CompareAndSwap(int32(st), int32(StateFailed)) {
			s.logger.Error("live session failed", "error", err)
			break
		}
	}
	s.teardown(false)
}

// teardown closes the connection exactly once, unblocking the pump and
// the decoder. Secondary errors during teardown are ignored.
func (s *Session) teardown(graceful bool) {
	s.downOnce.Do(func() {
		close(s.done)
		s.errMu.Lock()
		if s.closeTimer != nil {
			s.closeTimer.Stop()
		}
		s.errMu.Unlock()
		if graceful {
			s.conn.closeGraceful()
		} else {
			s.conn.forceClose()
		}
	})
}

func (s *Session) transition(from, to State) bool {
	return s.state.CompareAndSwap(int32(from), int32(to))
}
