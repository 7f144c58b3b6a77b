package metrics

import "github.com/seralo/chaoscope/internal/pendulum"

// Spread summarizes how far a population has fanned out, measured as
// divergence of every trajectory against the first one.
type Spread struct {
	Mean float64
	Max  float64
}

// PopulationSpread computes the spread of pop relative to its trajectory 0.
// Divergence range violations propagate; they indicate a core bug, not a
// property of the data.
func PopulationSpread(pop *pendulum.Population) (Spread, error) {
	trajs := pop.Trajectories()
	ref := trajs[0]

	var s Spread
	for _, traj := range trajs[1:] {
		d, err := ref.Divergence(traj)
		if err != nil {
			return Spread{}, err
		}
		s.Mean += d
		if d > s.Max {
			s.Max = d
		}
	}
	if len(trajs) > 1 {
		s.Mean /= float64(len(trajs) - 1)
	}
	return s, nil
}
