package game

import "math/rand/v2"

// Outcome reports what a step produced beyond plain ball motion.
type Outcome struct {
	ScoredBy Team // empty if no goal this tick
	GameOver bool
	Winner   Team
}

// Step advances the ball exactly one tick: integrate, bounce off the
// top/bottom walls, resolve paddle hits, then check the goals. It touches
// only the state passed in.
func Step(s *State) Outcome {
	s.Tick++
	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y+BallSize >= CourtHeight {
		b.VY = -b.VY
	}

	// Human side. Spin applies per paddle struck; the reflection and
	// speedup apply once no matter how many paddles overlap the ball.
	humanHit := false
	for _, p := range s.Players {
		if b.VX < 0 &&
			b.X >= HumanPaddleX && b.X <= HumanPaddleX+PaddleWidth &&
			b.Y+BallSize >= p.Y && b.Y <= p.Y+PaddleHeight {
			humanHit = true
			hitPos := (b.Y - p.Y) / PaddleHeight
			b.VY += (hitPos - 0.5) * HumanSpinFactor
		}
	}
	if humanHit {
		b.VX = clampSpeed(b.VX * -HumanSpeedup)
	}

	// AI side.
	if b.VX > 0 &&
		b.X >= AIPaddleX-BallSize &&
		b.Y+BallSize >= s.AI.Y && b.Y <= s.AI.Y+PaddleHeight {
		b.VX = clampSpeed(b.VX * -AISpeedup)
		hitPos := (b.Y - s.AI.Y) / PaddleHeight
		b.VY += (hitPos - 0.5) * AISpinFactor
	}

	var out Outcome
	switch {
	case b.X < -GoalMargin:
		s.AIScore++
		out.ScoredBy = TeamAI
		resetBall(b, -1) // serve back toward the side that conceded
	case b.X > CourtWidth+GoalMargin:
		s.HumanScore++
		out.ScoredBy = TeamHuman
		resetBall(b, 1)
	}

	if out.ScoredBy != "" && s.Winner == "" {
		switch {
		case s.HumanScore >= WinScore:
			s.Winner = TeamHuman
		case s.AIScore >= WinScore:
			s.Winner = TeamAI
		}
		if s.Winner != "" {
			out.GameOver = true
			out.Winner = s.Winner
		}
	}
	return out
}

func resetBall(b *Ball, direction float64) {
	b.X = CourtWidth / 2
	b.Y = CourtHeight / 2
	b.VX = BallSpeedBase * direction
	b.VY = (rand.Float64() - 0.5) * ResetVYSpread
}

// clampSpeed caps |vx| without ever pushing it toward zero; a dead
// horizontal ball could never cross a goal margin again.
func clampSpeed(vx float64) float64 {
	if vx > MaxBallSpeed {
		return MaxBallSpeed
	}
	if vx < -MaxBallSpeed {
		return -MaxBallSpeed
	}
	return vx
}
