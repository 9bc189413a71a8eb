package client

import "github.com/brickrockler/superpong/game"

// PaddleTargetY maps a pointer position inside the rendered court to a
// paddle top in logical coordinates, centering the paddle on the pointer
// and correcting for any scaling between the rendered surface and the
// 900x600 logical court.
func PaddleTargetY(pointerY, courtTop, renderedHeight float64) float64 {
	if renderedHeight <= 0 {
		renderedHeight = game.CourtHeight
	}
	scale := game.CourtHeight / renderedHeight
	return (pointerY-courtTop)*scale - game.PaddleHeight/2
}
