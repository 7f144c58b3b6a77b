// Package metrics computes observables over trajectories and populations:
// mechanical energy for drift monitoring and divergence spread for the
// ensemble views.
package metrics

import (
	"math"

	"github.com/seralo/chaoscope/internal/pendulum"
)

// Energy returns the total mechanical energy of one trajectory. With no
// damping and a small dt this should drift only slowly under semi-implicit
// Euler, which makes it a useful health indicator in the live views.
func Energy(t pendulum.Trajectory, pa, pb pendulum.Params) float64 {
	mA, mB := pa.Mass(), pb.Mass()
	lA, lB := pa.Length(), pb.Length()
	thetaA, thetaB := t.A.Angle, t.B.Angle
	omegaA, omegaB := t.A.Velocity, t.B.Velocity

	vASq := lA * lA * omegaA * omegaA
	vBSq := vASq + lB*lB*omegaB*omegaB +
		2*lA*lB*omegaA*omegaB*math.Cos(thetaA-thetaB)

	ke := 0.5*mA*vASq + 0.5*mB*vBSq

	yA := -lA * math.Cos(thetaA)
	yB := yA - lB*math.Cos(thetaB)
	pe := pendulum.Gravity * (mA*yA + mB*yB)

	return ke + pe
}
