package game

// MoveAI runs one tick of the AI paddle's proportional controller. The
// target always centers the paddle on the ball; only the gain changes
// with ball direction. Sharp tracking on approach, a lazy drift when the
// ball heads away. That asymmetry is the entire difficulty model.
func MoveAI(s *State) {
	target := s.Ball.Y - PaddleHeight/2
	gain := AIReturnGain
	if s.Ball.VX > 0 {
		gain = AIChaseGain
	}
	s.AI.Y = ClampPaddleY(s.AI.Y + (target-s.AI.Y)*gain)
}
