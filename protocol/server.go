package protocol

// Payloads fanned out to clients. roomCreated, roomJoined and error carry
// a bare JSON string instead of a struct.

type PlayerEntry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country,omitempty"`
	Y       float64 `json:"y"`
	IsHost  bool    `json:"isHost"`
}

type Score struct {
	Human int `json:"human"`
	AI    int `json:"ai"`
}

type BallSnapshot struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type AISnapshot struct {
	Y float64 `json:"y"`
}

// GameState is the per-tick snapshot. Delivery is best-effort; only the
// freshest one matters.
type GameState struct {
	Tick    int           `json:"tick"`
	Ball    BallSnapshot  `json:"ball"`
	AI      AISnapshot    `json:"ai"`
	Players []PlayerEntry `json:"players"`
}

type GameOver struct {
	Winner string `json:"winner"` // "human" or "ai"
}
