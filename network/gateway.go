package network

import (
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/brickrockler/superpong/protocol"
	"github.com/brickrockler/superpong/room"
)

// Gateway terminates websocket connections and translates the wire
// protocol into room commands. One read loop per connection; all room
// state stays behind each room's inbox.
type Gateway struct {
	mgr      *room.Manager
	log      *slog.Logger
	maxConns int
	conns    atomic.Int32
	upgrader websocket.Upgrader
}

func NewGateway(mgr *room.Manager, maxConns int, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		mgr:      mgr,
		log:      log,
		maxConns: maxConns,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	if g.maxConns > 0 && g.conns.Load() >= int32(g.maxConns) {
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("websocket upgrade failed", "err", err)
		return
	}
	g.conns.Add(1)
	defer g.conns.Add(-1)

	id := uuid.NewString()
	c := newClient(id, ws)
	go c.writePump()
	defer c.Close()

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	g.log.Info("client connected", "id", id, "remote", r.RemoteAddr)
	g.readLoop(c)
	g.log.Info("client disconnected", "id", id)
}

func (g *Gateway) readLoop(c *Client) {
	var current *room.Room
	defer func() {
		if current != nil {
			forward(current, room.Leave{PlayerID: c.id})
		}
	}()

	for {
		_, msg, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			g.sendError(c, "malformed message")
			continue
		}

		switch env.T {
		case protocol.MsgCreateRoom:
			p, err := protocol.DecodePayload[protocol.CreateRoom](env)
			if err != nil || strings.TrimSpace(p.Name) == "" {
				g.sendError(c, "a display name is required")
				continue
			}
			if current != nil {
				g.sendError(c, "already in a room")
				continue
			}
			rm, err := g.mgr.CreateRoom()
			if err != nil {
				g.sendError(c, err.Error())
				continue
			}
			res := g.join(rm, c, p.Name, p.Country, true)
			if res.Err != nil {
				g.sendError(c, res.Err.Error())
				continue
			}
			current = rm
			g.send(c, protocol.MsgRoomCreated, res.Code)

		case protocol.MsgJoinRoom:
			p, err := protocol.DecodePayload[protocol.JoinRoom](env)
			if err != nil || p.Code == "" || strings.TrimSpace(p.Name) == "" {
				g.sendError(c, "a room code and display name are required")
				continue
			}
			if current != nil {
				g.sendError(c, "already in a room")
				continue
			}
			rm, ok := g.mgr.Lookup(p.Code)
			if !ok {
				g.sendError(c, room.ErrGameStarted.Error())
				continue
			}
			res := g.join(rm, c, p.Name, p.Country, false)
			if res.Err != nil {
				g.sendError(c, res.Err.Error())
				continue
			}
			current = rm
			g.send(c, protocol.MsgRoomJoined, res.Code)

		case protocol.MsgStartGame:
			if current == nil {
				g.sendError(c, "not in a room")
				continue
			}
			forward(current, room.Start{PlayerID: c.id})

		case protocol.MsgInput:
			if current == nil {
				continue
			}
			p, err := protocol.DecodePayload[protocol.Input](env)
			if err != nil {
				continue
			}
			forward(current, room.Input{PlayerID: c.id, Y: p.Y})

		default:
			g.sendError(c, "unknown event: "+env.T)
		}
	}
}

// join hands a Join to the room and waits for the verdict. The room can
// be torn down between the directory lookup and this send (last player
// leaves, OnEmpty fires); selecting on Done keeps the read loop from
// wedging on a dead inbox.
func (g *Gateway) join(rm *room.Room, c *Client, name, country string, host bool) room.JoinResult {
	reply := make(chan room.JoinResult, 1)
	cmd := room.Join{
		PlayerID: c.id,
		Conn:     c,
		Name:     name,
		Country:  country,
		Host:     host,
		Reply:    reply,
	}
	select {
	case rm.Inbox <- cmd:
	case <-rm.Done():
		return room.JoinResult{Err: room.ErrGameStarted}
	}
	select {
	case res := <-reply:
		return res
	case <-rm.Done():
		return room.JoinResult{Err: room.ErrGameStarted}
	}
}

// forward delivers a command unless the room's goroutine is gone.
func forward(rm *room.Room, cmd any) {
	select {
	case rm.Inbox <- cmd:
	case <-rm.Done():
	}
}

func (g *Gateway) send(c *Client, t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (g *Gateway) sendError(c *Client, msg string) {
	g.send(c, protocol.MsgError, msg)
}
