package room

import (
	"sync/atomic"

	"github.com/brickrockler/superpong/game"
	"github.com/brickrockler/superpong/protocol"
)

// Room owns one session. Every mutation funnels through the Inbox and is
// applied on the room's own goroutine, so no field below needs a lock;
// the two atomics exist only for cross-goroutine reads by the Manager
// listing and the Scheduler gate.
type Room struct {
	Inbox chan any

	Code    string
	OnEmpty func(code string) // called when the last player leaves

	status     Status
	hostID     string
	maxPlayers int
	state      *game.State
	joinOrder  []string
	clients    map[string]Conn
	quit       chan struct{}
	done       chan struct{}

	phase atomic.Int32
	count atomic.Int32
}

func New(code string, maxPlayers int) *Room {
	return &Room{
		Inbox:      make(chan any, 256),
		Code:       code,
		maxPlayers: maxPlayers,
		status:     StatusLobby,
		state:      game.NewState(),
		clients:    make(map[string]Conn),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// Done is closed once the room's goroutine has exited. Senders must
// select on it: a command sent to a dead inbox would otherwise wait for
// a reply that can never come.
func (r *Room) Done() <-chan struct{} {
	return r.done
}

// NumPlayers and Status are safe from any goroutine.
func (r *Room) NumPlayers() int {
	return int(r.count.Load())
}

func (r *Room) Status() Status {
	return Status(r.phase.Load())
}

func (r *Room) Run() {
	defer close(r.done)
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Start:
		r.handleStart(c.PlayerID)
	case Input:
		r.handleInput(c.PlayerID, c.Y)
	case Leave:
		r.handleLeave(c.PlayerID)
	case Tick:
		r.handleTick()
	}
}

func (r *Room) handleJoin(c Join) {
	if r.status != StatusLobby {
		c.Reply <- JoinResult{Err: ErrGameStarted}
		return
	}
	if r.maxPlayers > 0 && len(r.clients) >= r.maxPlayers {
		c.Reply <- JoinResult{Err: ErrRoomFull}
		return
	}

	host := c.Host || r.hostID == ""
	r.clients[c.PlayerID] = c.Conn
	r.joinOrder = append(r.joinOrder, c.PlayerID)
	r.state.Players[c.PlayerID] = game.NewPlayer(c.PlayerID, c.Name, c.Country, host)
	if host {
		r.hostID = c.PlayerID
	}
	r.count.Store(int32(len(r.clients)))

	c.Reply <- JoinResult{Code: r.Code}
	r.broadcastRoster()
}

func (r *Room) handleStart(playerID string) {
	if r.status != StatusLobby {
		r.sendErrorTo(playerID, "game already started")
		return
	}
	if playerID != r.hostID {
		r.sendErrorTo(playerID, "only the host can start the game")
		return
	}
	r.setStatus(StatusPlaying)
	r.broadcast(protocol.MsgGameStarted, struct{}{})
}

func (r *Room) handleInput(playerID string, y float64) {
	if r.status != StatusPlaying {
		return
	}
	p, ok := r.state.Players[playerID]
	if !ok {
		return
	}
	p.Y = game.ClampPaddleY(y)
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	if !ok {
		return
	}
	delete(r.clients, playerID)
	delete(r.state.Players, playerID)
	for i, id := range r.joinOrder {
		if id == playerID {
			r.joinOrder = append(r.joinOrder[:i], r.joinOrder[i+1:]...)
			break
		}
	}
	_ = c.Close()
	r.count.Store(int32(len(r.clients)))

	if len(r.clients) == 0 {
		if r.OnEmpty != nil && r.Code != "" {
			r.OnEmpty(r.Code)
		}
		return
	}
	if playerID == r.hostID {
		// Earliest remaining joiner inherits the room.
		r.hostID = r.joinOrder[0]
		r.state.Players[r.hostID].IsHost = true
	}
	r.broadcastRoster()
}

func (r *Room) handleTick() {
	if r.status != StatusPlaying {
		return
	}
	out := game.Step(r.state)
	game.MoveAI(r.state)

	if out.ScoredBy != "" {
		r.broadcast(protocol.MsgScoreUpdate, protocol.Score{
			Human: r.state.HumanScore,
			AI:    r.state.AIScore,
		})
	}
	if out.GameOver {
		r.setStatus(StatusFinished)
		r.broadcast(protocol.MsgGameOver, protocol.GameOver{Winner: string(out.Winner)})
	}
	// The finishing tick still ships its snapshot so clients render the
	// point that ended the game.
	r.broadcastState()
}

func (r *Room) setStatus(s Status) {
	r.status = s
	r.phase.Store(int32(s))
}

func (r *Room) broadcastRoster() {
	r.broadcast(protocol.MsgPlayerList, r.buildRoster())
}

// broadcast reliably delivers one event to every member. Clients whose
// send queue is wedged get dropped from the room.
func (r *Room) broadcast(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.handleLeave(id)
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgGameState, r.buildSnapshot())
	if err != nil {
		return
	}
	for _, c := range r.clients {
		_ = c.SendState(b)
	}
}

func (r *Room) buildRoster() []protocol.PlayerEntry {
	roster := make([]protocol.PlayerEntry, 0, len(r.joinOrder))
	for _, id := range r.joinOrder {
		p, ok := r.state.Players[id]
		if !ok {
			continue
		}
		roster = append(roster, protocol.PlayerEntry{
			ID:      p.ID,
			Name:    p.Name,
			Country: p.Country,
			Y:       p.Y,
			IsHost:  p.IsHost,
		})
	}
	return roster
}

func (r *Room) buildSnapshot() protocol.GameState {
	return protocol.GameState{
		Tick: r.state.Tick,
		Ball: protocol.BallSnapshot{
			X:  r.state.Ball.X,
			Y:  r.state.Ball.Y,
			VX: r.state.Ball.VX,
			VY: r.state.Ball.VY,
		},
		AI:      protocol.AISnapshot{Y: r.state.AI.Y},
		Players: r.buildRoster(),
	}
}

func (r *Room) sendErrorTo(playerID, msg string) {
	c, ok := r.clients[playerID]
	if !ok {
		return
	}
	b, err := protocol.Encode(protocol.MsgError, msg)
	if err != nil {
		return
	}
	_ = c.Send(b)
}
