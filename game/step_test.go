package game

import (
	"math"
	"testing"
)

func TestStepMovesBallAndAdvancesTick(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: 450, Y: 300, VX: 8, VY: 2}

	Step(s)
	if s.Tick != 1 {
		t.Fatalf("tick after 1 step = %d, want 1", s.Tick)
	}
	if s.Ball.X != 458 || s.Ball.Y != 302 {
		t.Fatalf("ball after 1 step = (%f, %f), want (458, 302)", s.Ball.X, s.Ball.Y)
	}
}

func TestStepBouncesOffTopAndBottomWalls(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: 450, Y: 2, VX: 0.1, VY: -4}

	Step(s)
	if s.Ball.VY <= 0 {
		t.Fatalf("expected vy to flip positive at top wall, got %f", s.Ball.VY)
	}

	s.Ball = Ball{X: 450, Y: CourtHeight - BallSize - 2, VX: 0.1, VY: 4}
	Step(s)
	if s.Ball.VY >= 0 {
		t.Fatalf("expected vy to flip negative at bottom wall, got %f", s.Ball.VY)
	}
}

func TestHumanPaddleReflectsAndSpeedsUp(t *testing.T) {
	s := NewState()
	s.Players["p1"] = &Player{ID: "p1", Y: 240}
	// After integration the ball sits at x=42, inside the paddle band,
	// dead center on the paddle so no spin is added.
	s.Ball = Ball{X: 50, Y: 300 - BallSize/2, VX: -8, VY: 0}

	Step(s)
	if s.Ball.VX <= 0 {
		t.Fatalf("expected reflection off human paddle, vx=%f", s.Ball.VX)
	}
	want := 8 * HumanSpeedup
	if math.Abs(s.Ball.VX-want) > 1e-9 {
		t.Fatalf("vx after hit = %f, want %f", s.Ball.VX, want)
	}
}

func TestHumanPaddleSpinDependsOnHitPosition(t *testing.T) {
	s := NewState()
	s.Players["p1"] = &Player{ID: "p1", Y: 240}
	// Strike near the paddle top: relative position < 0.5, vy goes up.
	s.Ball = Ball{X: 50, Y: 245, VX: -8, VY: 0}

	Step(s)
	if s.Ball.VY >= 0 {
		t.Fatalf("expected upward spin from a top-of-paddle hit, vy=%f", s.Ball.VY)
	}
}

func TestOverlappingPaddlesFlipSpeedOnce(t *testing.T) {
	s := NewState()
	s.Players["p1"] = &Player{ID: "p1", Y: 240}
	s.Players["p2"] = &Player{ID: "p2", Y: 240}
	s.Ball = Ball{X: 50, Y: 300 - BallSize/2, VX: -8, VY: 0}

	Step(s)
	want := 8 * HumanSpeedup
	if math.Abs(s.Ball.VX-want) > 1e-9 {
		t.Fatalf("two overlapping paddles must amplify once: vx=%f want %f", s.Ball.VX, want)
	}
}

func TestAIPaddleReflectsFasterThanHumans(t *testing.T) {
	s := NewState()
	s.AI.Y = 240
	s.Ball = Ball{X: AIPaddleX - BallSize - 2, Y: 300 - BallSize/2, VX: 8, VY: 0}

	Step(s)
	if s.Ball.VX >= 0 {
		t.Fatalf("expected reflection off AI paddle, vx=%f", s.Ball.VX)
	}
	want := -8 * AISpeedup
	if math.Abs(s.Ball.VX-want) > 1e-9 {
		t.Fatalf("vx after AI hit = %f, want %f", s.Ball.VX, want)
	}
}

func TestBallSpeedNeverExceedsCap(t *testing.T) {
	s := NewState()
	s.Players["p1"] = &Player{ID: "p1", Y: 240}
	s.Ball = Ball{X: 50, Y: 300 - BallSize/2, VX: -24.5, VY: 0}

	Step(s)
	if s.Ball.VX != MaxBallSpeed {
		t.Fatalf("vx after amplification = %f, want clamped to %f", s.Ball.VX, MaxBallSpeed)
	}
}

func TestRepeatedHitsAmplifyMonotonically(t *testing.T) {
	s := NewState()
	s.Players["p1"] = &Player{ID: "p1", Y: 240}

	prev := 8.0
	for i := 0; i < 50; i++ {
		s.Ball = Ball{X: 50, Y: 300 - BallSize/2, VX: -prev, VY: 0}
		Step(s)
		got := s.Ball.VX
		if got < prev {
			t.Fatalf("hit %d: |vx| shrank from %f to %f", i, prev, got)
		}
		if got > MaxBallSpeed {
			t.Fatalf("hit %d: |vx|=%f exceeds cap %f", i, got, MaxBallSpeed)
		}
		prev = got
	}
	if prev != MaxBallSpeed {
		t.Fatalf("expected repeated hits to saturate at the cap, ended at %f", prev)
	}
}

func TestAIScoresPastHumanGoal(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: -45, Y: 300, VX: -8, VY: 0}

	out := Step(s)
	if out.ScoredBy != TeamAI {
		t.Fatalf("ScoredBy = %q, want %q", out.ScoredBy, TeamAI)
	}
	if s.AIScore != 1 || s.HumanScore != 0 {
		t.Fatalf("score = %d:%d, want 0:1", s.HumanScore, s.AIScore)
	}
	if s.Ball.X != CourtWidth/2 || s.Ball.Y != CourtHeight/2 {
		t.Fatalf("ball not reset to center: (%f, %f)", s.Ball.X, s.Ball.Y)
	}
	if s.Ball.VX != -BallSpeedBase {
		t.Fatalf("serve must head toward the conceding side: vx=%f, want %f", s.Ball.VX, -BallSpeedBase)
	}
	if s.Ball.VY <= -ResetVYSpread/2 || s.Ball.VY >= ResetVYSpread/2 {
		t.Fatalf("serve vy=%f outside (%f, %f)", s.Ball.VY, -ResetVYSpread/2, ResetVYSpread/2)
	}
}

func TestHumansScorePastAIGoal(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: CourtWidth + 45, Y: 300, VX: 8, VY: 0}

	out := Step(s)
	if out.ScoredBy != TeamHuman {
		t.Fatalf("ScoredBy = %q, want %q", out.ScoredBy, TeamHuman)
	}
	if s.HumanScore != 1 || s.AIScore != 0 {
		t.Fatalf("score = %d:%d, want 1:0", s.HumanScore, s.AIScore)
	}
	if s.Ball.VX != BallSpeedBase {
		t.Fatalf("serve must head toward the AI side: vx=%f, want %f", s.Ball.VX, BallSpeedBase)
	}
}

func TestWinThresholdSetsWinner(t *testing.T) {
	s := NewState()
	s.AIScore = WinScore - 1
	s.Ball = Ball{X: -45, Y: 300, VX: -8, VY: 0}

	out := Step(s)
	if !out.GameOver || out.Winner != TeamAI {
		t.Fatalf("outcome = %+v, want game over with AI winner", out)
	}
	if s.Winner != TeamAI {
		t.Fatalf("state winner = %q, want %q", s.Winner, TeamAI)
	}
}

func TestNoGoalMeansNoOutcome(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: 450, Y: 300, VX: 8, VY: 0}

	out := Step(s)
	if out.ScoredBy != "" || out.GameOver {
		t.Fatalf("quiet tick produced outcome %+v", out)
	}
}
