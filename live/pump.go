package live

import "time"

// pump is the only writer on the connection. It forwards audio chunks
// and control messages in the order they arrive, one frame each, and
// synthesizes KeepAlive frames when the producer goes idle. It never
// buffers: a slow socket blocks the pump, which blocks Send.
func (s *Session) pump() {
	defer s.wg.Done()

	var tick <-chan time.Time
	if s.opts.KeepAlive {
		ticker := time.NewTicker(s.opts.keepAliveInterval())
		defer ticker.Stop()
		tick = ticker.C
	}

	lastWrite := time.Now()

	for {
		select {
		case chunk := <-s.audio:
			if err := s.conn.writeBinary(chunk); err != nil {
				s.fail(&SendError{Frame: "audio", Err: err})
				return
			}
			lastWrite = time.Now()

		case msg := <-s.control:
			if err := s.conn.writeControl(msg); err != nil {
				s.fail(&SendError{Frame: msg.Type, Err: err})
				return
			}
			lastWrite = time.Now()

		case <-tick:
			if time.Since(lastWrite) < s.opts.keepAliveInterval() {
				continue
			}
			s.logger.Debug("keepalive")
			if err := s.conn.writeControl(controlMessage{Type: msgKeepAlive}); err != nil {
				s.fail(&SendError{Frame: msgKeepAlive, Err: err})
				return
			}
			lastWrite = time.Now()

		case <-s.finish:
			s.flushAndCloseStream()
			return

		case <-s.done:
			return
		}
	}
}

// flushAndCloseStream delivers any chunk a sender was already blocked
// on, then sends the CloseStream frame exactly once. The connection
// stays open so the decoder can drain the server's remaining results.
func (s *Session) flushAndCloseStream() {
	for {
		select {
		case chunk := <-s.audio:
			if err := s.conn.writeBinary(chunk); err != nil {
				s.fail(&SendError{Frame: "audio", Err: err})
				return
			}
		case <-s.done:
			return
		default:
			if err := s.conn.writeControl(controlMessage{Type: msgCloseStream}); err != nil {
				s.fail(&SendError{Frame: msgCloseStream, Err: err})
				return
			}
			s.logger.Debug("sent close stream")
			return
		}
	}
}
