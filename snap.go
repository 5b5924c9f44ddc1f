package glide

import "math"

// DefaultSnapFactor weights release velocity, in screen widths per second,
// when projecting where a gesture would come to rest.
const DefaultSnapFactor = 0.2

// SnapSolver picks the resting point a released gesture settles to.
type SnapSolver struct {
	// Factor scales velocity before it is added to the current progress.
	// Zero disables momentum entirely.
	Factor float64
}

// Solve projects progress by velocity and returns the closest point.
// Ties resolve to the lowest tied point. With no points the bounds are [0, 1].
func (s SnapSolver) Solve(progress, velocity float64, points ...float64) float64 {
	if len(points) == 0 {
		points = []float64{0, 1}
	}
	projected := progress + s.Factor*velocity

	best := points[0]
	bestDelta := math.Abs(projected - best)
	for _, p := range points[1:] {
		d := math.Abs(projected - p)
		if d < bestDelta || (d == bestDelta && p < best) {
			best, bestDelta = p, d
		}
	}
	return best
}

// Snap solves with DefaultSnapFactor.
func Snap(progress, velocity float64, points ...float64) float64 {
	return SnapSolver{Factor: DefaultSnapFactor}.Solve(progress, velocity, points...)
}
