package game

const (
	CourtWidth   = 900.0
	CourtHeight  = 600.0
	PaddleWidth  = 24.0
	PaddleHeight = 120.0
	BallSize     = 16.0

	BallSpeedBase = 8.0
	MaxBallSpeed  = 25.0 // ceiling for |vx|; hits always amplify, never decay

	HumanPaddleX = 40.0
	AIPaddleX    = CourtWidth - 40.0 - PaddleWidth

	HumanSpeedup    = 1.05
	HumanSpinFactor = 10.0
	AISpeedup       = 1.15 // the AI hits harder on purpose
	AISpinFactor    = 12.0

	GoalMargin    = 50.0 // how far past a wall the ball must travel to score
	ResetVYSpread = 6.0  // serve vy drawn uniformly from (-spread/2, spread/2)

	AIChaseGain  = 0.25 // ball approaching the AI
	AIReturnGain = 0.05 // ball receding

	WinScore = 21

	MaxPaddleY = CourtHeight - PaddleHeight
)
