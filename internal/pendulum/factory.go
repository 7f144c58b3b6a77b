package pendulum

import (
	"math"
	"math/rand"
)

// RandomTrajectory samples both angles and both angular velocities uniformly
// from (-π, π). The caller owns the rand source; thread a fixed seed in for
// reproducible populations.
func RandomTrajectory(rng *rand.Rand) Trajectory {
	uniform := func() float64 {
		return -math.Pi + 2*math.Pi*rng.Float64()
	}
	return Trajectory{
		A: ArmState{Angle: uniform(), Velocity: uniform()},
		B: ArmState{Angle: uniform(), Velocity: uniform()},
	}
}

// RandomTrajectories builds n independent random trajectories.
func RandomTrajectories(rng *rand.Rand, n int) []Trajectory {
	trajs := make([]Trajectory, n)
	for i := range trajs {
		trajs[i] = RandomTrajectory(rng)
	}
	return trajs
}

// PerturbedTrajectories fans a baseline out into n copies whose arm B angle
// is offset by delta·i. Index 0 is the unmodified baseline. A tiny delta
// (~1e-8) makes the copies visually identical until chaos separates them.
func PerturbedTrajectories(base Trajectory, n int, delta float64) []Trajectory {
	trajs := make([]Trajectory, n)
	for i := range trajs {
		t := base
		t.B.Angle += delta * float64(i)
		trajs[i] = t
	}
	return trajs
}
