package room

// Conn is the transport side of one connected player. Send is reliable
// delivery; SendState may drop a stale snapshot in favor of a newer one.
type Conn interface {
	Send(b []byte) error
	SendState(b []byte) error
	Close() error
}

// Join: issued once per connection, for create and join alike.
type Join struct {
	PlayerID string
	Conn     Conn
	Name     string
	Country  string
	Host     bool
	Reply    chan<- JoinResult
}

type JoinResult struct {
	Code string
	Err  error
}

// Start: requests the Lobby → Playing transition; host only.
type Start struct {
	PlayerID string
}

// Input: latest paddle target for a player. A player can only ever move
// their own paddle because the gateway stamps its own identity here.
type Input struct {
	PlayerID string
	Y        float64
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}

// Tick: fanned out by the Scheduler; ignored unless the room is Playing.
type Tick struct{}
