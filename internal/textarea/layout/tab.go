package layout

import "math"

// tabStops computes tab-stop positions for a fixed stop distance.
type tabStops struct {
	width float64
}

// next returns the first tab stop strictly past pos.
// Positions already on a stop advance a full stop.
func (t tabStops) next(pos float64) float64 {
	if t.width <= 0 {
		return pos
	}
	stop := math.Ceil(pos/t.width) * t.width
	if stop <= pos {
		stop += t.width
	}
	return stop
}
