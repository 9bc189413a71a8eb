package client

import (
	"sync"

	"github.com/brickrockler/superpong/protocol"
)

const (
	DefaultBallSmoothing = 0.2
	DefaultAISmoothing   = 0.1
)

// Reconciler turns discrete server snapshots into smooth motion. It keeps
// the latest authoritative snapshot and a visual copy: each animation
// frame the visual ball and AI paddle close a fixed fraction of the
// remaining distance to the authoritative position, while human paddles
// snap straight to it so local input never feels laggy.
type Reconciler struct {
	mu     sync.Mutex
	target protocol.GameState
	visual protocol.GameState
	have   bool

	ballSmoothing float64
	aiSmoothing   float64
}

func NewReconciler(ballSmoothing, aiSmoothing float64) *Reconciler {
	if ballSmoothing <= 0 || ballSmoothing > 1 {
		ballSmoothing = DefaultBallSmoothing
	}
	if aiSmoothing <= 0 || aiSmoothing > 1 {
		aiSmoothing = DefaultAISmoothing
	}
	return &Reconciler{
		ballSmoothing: ballSmoothing,
		aiSmoothing:   aiSmoothing,
	}
}

// Apply replaces the authoritative snapshot wholesale; nothing is merged
// field by field. The first snapshot also seeds the visual copy.
func (r *Reconciler) Apply(s protocol.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = s
	if !r.have {
		r.visual = s
		r.have = true
	}
}

// Frame advances smoothing by one animation frame and returns the state
// to draw. The second return is false until the first snapshot arrives.
func (r *Reconciler) Frame() (protocol.GameState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.have {
		return protocol.GameState{}, false
	}
	r.visual.Ball.X = lerp(r.visual.Ball.X, r.target.Ball.X, r.ballSmoothing)
	r.visual.Ball.Y = lerp(r.visual.Ball.Y, r.target.Ball.Y, r.ballSmoothing)
	r.visual.Ball.VX = r.target.Ball.VX
	r.visual.Ball.VY = r.target.Ball.VY
	r.visual.AI.Y = lerp(r.visual.AI.Y, r.target.AI.Y, r.aiSmoothing)
	r.visual.Tick = r.target.Tick
	r.visual.Players = r.target.Players
	return r.visual, true
}

func lerp(from, to, fraction float64) float64 {
	return from + (to-from)*fraction
}
