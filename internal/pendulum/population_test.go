package pendulum_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/seralo/chaoscope/internal/pendulum"
)

var _ = Describe("Params", func() {
	It("rejects zero length", func() {
		_, err := pendulum.NewParams(0, 1)
		Expect(err).To(MatchError(pendulum.ErrInvalidParams))
	})

	It("rejects negative or zero mass", func() {
		_, err := pendulum.NewParams(1, 0)
		Expect(err).To(MatchError(pendulum.ErrInvalidParams))

		_, err = pendulum.NewParams(1, -2)
		Expect(err).To(MatchError(pendulum.ErrInvalidParams))
	})

	It("exposes length and mass", func() {
		p, err := pendulum.NewParams(180, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Length()).To(Equal(180.0))
		Expect(p.Mass()).To(Equal(10.0))
	})
})

var _ = Describe("Population", func() {
	var (
		pa, pb pendulum.Params
		base   pendulum.Trajectory
	)

	BeforeEach(func() {
		pa = pendulum.MustParams(180, 10)
		pb = pendulum.MustParams(162, 1)
		base = pendulum.Trajectory{
			A: pendulum.ArmState{Angle: math.Pi, Velocity: math.Pi / 2},
			B: pendulum.ArmState{Angle: math.Pi - 3, Velocity: math.Pi / 4},
		}
	})

	Describe("construction", func() {
		It("rejects zero-value params", func() {
			_, err := pendulum.NewPopulation(pendulum.Params{}, pb,
				[]pendulum.Trajectory{base})
			Expect(err).To(MatchError(pendulum.ErrInvalidParams))
		})

		It("rejects an empty trajectory list", func() {
			_, err := pendulum.NewPopulation(pa, pb, nil)
			Expect(err).To(MatchError(pendulum.ErrEmptyPopulation))
		})

		It("keeps trajectory order", func() {
			trajs := pendulum.PerturbedTrajectories(base, 100, 1e-8)
			pop, err := pendulum.NewPopulation(pa, pb, trajs)
			Expect(err).NotTo(HaveOccurred())

			Expect(pop.Len()).To(Equal(100))
			for i, traj := range pop.Trajectories() {
				Expect(traj.B.Angle).To(Equal(base.B.Angle + 1e-8*float64(i)))
			}
		})
	})

	Describe("batch stepping", func() {
		It("matches stepping each trajectory alone, bit for bit", func() {
			trajs := pendulum.RandomTrajectories(rand.New(rand.NewSource(3)), 200)
			pop, err := pendulum.NewPopulation(pa, pb, trajs)
			Expect(err).NotTo(HaveOccurred())

			want := make([]pendulum.Trajectory, len(trajs))
			copy(want, trajs)
			for i := range want {
				want[i].StepN(pa, pb, 0.0001, 25)
			}

			pop.StepAllN(0.0001, 25)

			Expect(pop.Trajectories()).To(Equal(want))
		})

		It("is invariant to the worker count", func() {
			trajs := pendulum.RandomTrajectories(rand.New(rand.NewSource(9)), 500)

			single, err := pendulum.NewPopulation(pa, pb, cloneTrajectories(trajs))
			Expect(err).NotTo(HaveOccurred())
			single.SetWorkers(1)

			many, err := pendulum.NewPopulation(pa, pb, cloneTrajectories(trajs))
			Expect(err).NotTo(HaveOccurred())
			many.SetWorkers(8)

			single.StepAllN(0.0001, 40)
			many.StepAllN(0.0001, 40)

			Expect(many.Trajectories()).To(Equal(single.Trajectories()))
		})

		It("treats StepAll as StepAllN with n=1", func() {
			a, err := pendulum.NewPopulation(pa, pb,
				pendulum.PerturbedTrajectories(base, 50, 1e-8))
			Expect(err).NotTo(HaveOccurred())
			b, err := pendulum.NewPopulation(pa, pb,
				pendulum.PerturbedTrajectories(base, 50, 1e-8))
			Expect(err).NotTo(HaveOccurred())

			a.StepAll(0.0001)
			b.StepAllN(0.0001, 1)

			Expect(a.Trajectories()).To(Equal(b.Trajectories()))
		})
	})
})

func cloneTrajectories(trajs []pendulum.Trajectory) []pendulum.Trajectory {
	c := make([]pendulum.Trajectory, len(trajs))
	copy(c, trajs)
	return c
}
