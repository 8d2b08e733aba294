package live

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// controlMessage is an out-of-band instruction sent as one text frame.
type controlMessage struct {
	Type string `json:"type"`
}

const (
	msgKeepAlive   = "KeepAlive"
	msgFinalize    = "Finalize"
	msgCloseStream = "CloseStream"
)

const closeGracePeriod = time.Second

// conn owns the websocket connection. The write methods are called
// only from the pump goroutine and the read method only from the
// decoder goroutine, which satisfies gorilla's one-writer one-reader
// rule without locking.
type conn struct {
	ws *websocket.Conn
}

func dialConn(ctx context.Context, url string, header http.Header) (*conn, error) {
	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		cerr := &ConnectError{URL: url, Err: err}
		if resp != nil {
			cerr.Status = resp.StatusCode
		}
		return nil, cerr
	}
	return &conn{ws: ws}, nil
}

func (c *conn) writeBinary(p []byte) error {
	return c.ws.WriteMessage(websocket.BinaryMessage, p)
}

func (c *conn) writeControl(msg controlMessage) error {
	return c.ws.WriteJSON(msg)
}

func (c *conn) read() (int, []byte, error) {
	return c.ws.ReadMessage()
}

// closeGraceful sends a close frame before dropping the connection, so
// a well-behaved peer can acknowledge.
func (c *conn) closeGraceful() error {
	deadline := time.Now().Add(closeGracePeriod)
	c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		deadline,
	)
	return c.ws.Close()
}

// forceClose drops the connection immediately, unblocking any pending
// read or write.
func (c *conn) forceClose() error {
	return c.ws.Close()
}
