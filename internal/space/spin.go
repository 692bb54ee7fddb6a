package space

import "math"

// Spin moves bodies along circles around the origin. It keeps a preview
// moving without a physics model: inner bodies turn faster, following
// Kepler's third law relative to the outermost one.
type Spin struct {
	// Radians per second for a body at the reference distance.
	Rate float64

	reference float64
}

func NewSpin(bodies []*Body, rate float64) *Spin {
	return &Spin{Rate: rate, reference: MaxDistance(bodies)}
}

// Step advances every body by dt seconds. Bodies at the origin stay put.
func (s *Spin) Step(bodies []*Body, dt float64) {
	if s.reference == 0 {
		return
	}
	for _, b := range bodies {
		r := math.Hypot(b.X, b.Y)
		if r == 0 {
			continue
		}
		angle := s.Rate * math.Pow(s.reference/r, 1.5) * dt
		sin, cos := math.Sincos(angle)
		b.X, b.Y = b.X*cos-b.Y*sin, b.X*sin+b.Y*cos
	}
}
