package network

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1 << 20
	sendQueueSize  = 32
)

var errSendBacklog = errors.New("client send queue is full")

// Client owns one websocket and implements room.Conn. Reliable events
// queue on out; per-tick snapshots go through a single-slot mailbox where
// a fresh snapshot replaces an unsent stale one.
type Client struct {
	id    string
	ws    *websocket.Conn
	out   chan []byte
	state chan []byte

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(id string, ws *websocket.Conn) *Client {
	return &Client{
		id:    id,
		ws:    ws,
		out:   make(chan []byte, sendQueueSize),
		state: make(chan []byte, 1),
		done:  make(chan struct{}),
	}
}

// Send never blocks the room loop: a full queue means the peer is wedged
// and the room will drop the player on the returned error.
func (c *Client) Send(b []byte) error {
	select {
	case <-c.done:
		return net.ErrClosed
	default:
	}
	select {
	case c.out <- b:
		return nil
	default:
		return errSendBacklog
	}
}

// SendState is best-effort, latest wins.
func (c *Client) SendState(b []byte) error {
	select {
	case <-c.done:
		return net.ErrClosed
	default:
	}
	select {
	case c.state <- b:
	default:
		select {
		case <-c.state:
		default:
		}
		select {
		case c.state <- b:
		default:
		}
	}
	return nil
}

func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
	return nil
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.Close()

	for {
		select {
		case <-c.done:
			return
		case b := <-c.out:
			if c.write(websocket.TextMessage, b) != nil {
				return
			}
		case b := <-c.state:
			if c.write(websocket.TextMessage, b) != nil {
				return
			}
		case <-ticker.C:
			if c.write(websocket.PingMessage, nil) != nil {
				return
			}
		}
	}
}

func (c *Client) write(messageType int, b []byte) error {
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(messageType, b)
}
