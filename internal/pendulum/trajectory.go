package pendulum

import "math"

// Trajectory is the complete instantaneous state of one double pendulum.
// Arm A's pivot is fixed at the origin; arm B hangs from arm A's bob.
// Trajectories are plain values and mutually independent: stepping one never
// reads or writes another.
type Trajectory struct {
	A ArmState
	B ArmState
}

// divergenceSlack absorbs float rounding at the |d| == π boundary before a
// per-arm ratio counts as an invariant violation.
const divergenceSlack = 1e-9

// Accelerations evaluates the equations of motion at the current state,
// returning the instantaneous angular accelerations of both arms. Pure; this
// is the hot path, called once per sub-step per trajectory.
//
// Standard point-mass double-pendulum dynamics, e.g.
// https://es.wikipedia.org/wiki/Doble_p%C3%A9ndulo#Ecuaciones_de_movimiento
func (t Trajectory) Accelerations(pa, pb Params) (alphaA, alphaB float64) {
	massA, massB := pa.mass, pb.mass
	lenA, lenB := pa.length, pb.length
	angleA, angleB := t.A.Angle, t.B.Angle
	velA, velB := t.A.Velocity, t.B.Velocity

	delta := angleA - angleB
	sinDelta, cosDelta := math.Sincos(delta)
	cos2Delta := math.Cos(2 * delta)
	velASq := velA * velA
	velBSq := velB * velB
	massSum := massA + massB

	// Shared denominator term: 2mA + mB - mB·cos(2Δ)
	den := 2*massA + massB - massB*cos2Delta

	alphaA = (-Gravity*(2*massA+massB)*math.Sin(angleA) -
		massB*Gravity*math.Sin(angleA-2*angleB) -
		2*sinDelta*massB*(velBSq*lenB+velASq*lenA*cosDelta)) /
		(lenA * den)

	alphaB = 2 * sinDelta *
		(velASq*lenA*massSum +
			Gravity*massSum*math.Cos(angleA) +
			velBSq*lenB*massB*cosDelta) /
		(lenB * den)

	return alphaA, alphaB
}

// Step advances the trajectory by dt using semi-implicit Euler: velocities
// update from old-state accelerations, then angles update from the new
// velocities, then both angles are normalized. Bounding dt is the caller's
// contract; no stability check happens here.
func (t *Trajectory) Step(pa, pb Params, dt float64) {
	alphaA, alphaB := t.Accelerations(pa, pb)

	t.A.Velocity += alphaA * dt
	t.B.Velocity += alphaB * dt
	t.A.Angle += t.A.Velocity * dt
	t.B.Angle += t.B.Velocity * dt

	t.A.Angle = NormalizeAngle(t.A.Angle)
	t.B.Angle = NormalizeAngle(t.B.Angle)
}

// StepN applies Step n times with the same dt. Bit-for-bit equivalent to the
// sequential loop; no arithmetic is fused or reordered across sub-steps.
func (t *Trajectory) StepN(pa, pb Params, dt float64, n int) {
	for i := 0; i < n; i++ {
		t.Step(pa, pb, dt)
	}
}

// PositionA returns arm A's bob position: angle 0 hangs straight down.
func (t Trajectory) PositionA(pa Params) Point {
	sin, cos := math.Sincos(t.A.Angle)
	return Point{X: pa.length * sin, Y: -pa.length * cos}
}

// Positions returns both bob positions. Arm B's bob is arm A's bob plus the
// equivalent offset from θB and lB.
func (t Trajectory) Positions(pa, pb Params) (bobA, bobB Point) {
	bobA = t.PositionA(pa)
	sin, cos := math.Sincos(t.B.Angle)
	return bobA, bobA.Add(Point{X: pb.length * sin, Y: -pb.length * cos})
}

// Divergence measures how far two trajectories have drifted apart, in [0, 1].
// Per arm, the normalized angular distance |normalize(θ_self − θ_other)|/π is
// taken; the combined value is the product of the two, so it stays near zero
// while either arm still coincides. This is a perceptual weight for color
// mapping, not a metric: no triangle inequality is promised.
//
// A per-arm ratio outside [0, 1] beyond float slack returns
// ErrDivergenceRange; overshoot within the slack is clamped.
func (t Trajectory) Divergence(other Trajectory) (float64, error) {
	distA := math.Abs(NormalizeAngle(t.A.Angle-other.A.Angle)) / math.Pi
	distB := math.Abs(NormalizeAngle(t.B.Angle-other.B.Angle)) / math.Pi

	var err error
	if distA, err = clampRatio(distA); err != nil {
		return 0, err
	}
	if distB, err = clampRatio(distB); err != nil {
		return 0, err
	}

	return distA * distB, nil
}

func clampRatio(r float64) (float64, error) {
	switch {
	case r >= 0 && r <= 1:
		return r, nil
	case r > 1 && r <= 1+divergenceSlack:
		return 1, nil
	case r < 0 && r >= -divergenceSlack:
		return 0, nil
	default:
		return 0, ErrDivergenceRange
	}
}
