package pendulum

import (
	"math"
	"testing"
)

func benchPopulation(b *testing.B, size, workers int) *Population {
	b.Helper()

	base := Trajectory{
		A: ArmState{Angle: math.Pi, Velocity: math.Pi / 2},
		B: ArmState{Angle: math.Pi - 3, Velocity: math.Pi / 4},
	}
	pop, err := NewPopulation(
		MustParams(180, 10),
		MustParams(162, 1),
		PerturbedTrajectories(base, size, 1e-8),
	)
	if err != nil {
		b.Fatal(err)
	}
	pop.SetWorkers(workers)
	return pop
}

func BenchmarkStep(b *testing.B) {
	pa := MustParams(180, 10)
	pb := MustParams(162, 1)
	traj := Trajectory{
		A: ArmState{Angle: math.Pi, Velocity: math.Pi / 2},
		B: ArmState{Angle: math.Pi - 3, Velocity: math.Pi / 4},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		traj.Step(pa, pb, 0.0001)
	}
}

func BenchmarkStepAllN_SingleWorker(b *testing.B) {
	pop := benchPopulation(b, 5000, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pop.StepAllN(0.0001, 16)
	}
}

func BenchmarkStepAllN_AllWorkers(b *testing.B) {
	pop := benchPopulation(b, 5000, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pop.StepAllN(0.0001, 16)
	}
}
