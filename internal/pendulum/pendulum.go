package pendulum

// Gravity is the gravitational acceleration used by the equations of motion.
// The simulation runs in screen units rather than SI, so this is tuned for
// visual pacing, not 9.81.
const Gravity = 100.0

// Params describes one arm: a rigid massless rod with a point mass at its
// free end. Immutable after construction; both values are strictly positive.
type Params struct {
	length float64
	mass   float64
}

// NewParams validates and builds arm parameters. Non-positive length or mass
// is a configuration error: the equations of motion divide by length and by
// mass-dependent denominators.
func NewParams(length, mass float64) (Params, error) {
	if length <= 0 || mass <= 0 {
		return Params{}, ErrInvalidParams
	}
	return Params{length: length, mass: mass}, nil
}

// MustParams is NewParams for literal values known to be valid, e.g. in tests.
func MustParams(length, mass float64) Params {
	p, err := NewParams(length, mass)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Params) Length() float64 { return p.length }
func (p Params) Mass() float64   { return p.mass }

func (p Params) valid() bool { return p.length > 0 && p.mass > 0 }

// ArmState is one arm's dynamic state. Angle is kept normalized into
// (-π, π] after every integration step.
type ArmState struct {
	Angle    float64 // radians, 0 hangs straight down
	Velocity float64 // radians per unit time
}
