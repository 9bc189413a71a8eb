package game

// Internal truth authoritative game state

type Team string

const (
	TeamHuman Team = "human"
	TeamAI    Team = "ai"
)

type State struct {
	Tick       int
	Players    map[string]*Player
	Ball       Ball
	AI         AIPaddle
	HumanScore int
	AIScore    int
	Winner     Team
}

// Player is one human paddle on the left side of the court. All humans
// share the same vertical line; overlapping paddles are legal.
type Player struct {
	ID      string
	Name    string
	Country string
	Y       float64
	IsHost  bool
}

type Ball struct {
	X, Y   float64
	VX, VY float64
}

type AIPaddle struct {
	Y float64
}

func NewState() *State {
	return &State{
		Players: make(map[string]*Player),
		Ball: Ball{
			X:  CourtWidth / 2,
			Y:  CourtHeight / 2,
			VX: BallSpeedBase,
		},
		AI: AIPaddle{Y: centerPaddleY()},
	}
}

func NewPlayer(id, name, country string, host bool) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Country: country,
		Y:       centerPaddleY(),
		IsHost:  host,
	}
}

// ClampPaddleY bounds a paddle top to the court. Every write to a paddle
// position goes through here.
func ClampPaddleY(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > MaxPaddleY {
		return MaxPaddleY
	}
	return y
}

func centerPaddleY() float64 {
	return CourtHeight/2 - PaddleHeight/2
}
