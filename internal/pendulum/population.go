package pendulum

import (
	"runtime"
	"sync"
)

// minChunk is the smallest trajectory count worth a goroutine of its own;
// below this the fan-out overhead beats the arithmetic.
const minChunk = 64

// Population owns the two shared arm parameters and an ordered set of
// independent trajectories. Order is stable for the lifetime of the
// population (external color mapping indexes by position) but carries no
// other meaning.
type Population struct {
	pendulumA Params
	pendulumB Params
	trajs     []Trajectory
	workers   int
}

// NewPopulation builds a population over validated shared parameters. The
// params are re-checked here so a zero-value Params smuggled past NewParams
// still fails loudly instead of propagating NaN through every step.
func NewPopulation(pendulumA, pendulumB Params, trajs []Trajectory) (*Population, error) {
	if !pendulumA.valid() || !pendulumB.valid() {
		return nil, ErrInvalidParams
	}
	if len(trajs) == 0 {
		return nil, ErrEmptyPopulation
	}
	return &Population{
		pendulumA: pendulumA,
		pendulumB: pendulumB,
		trajs:     trajs,
		workers:   runtime.GOMAXPROCS(0),
	}, nil
}

// SetWorkers bounds the fan-out for batch stepping. Values below 1 reset to
// the GOMAXPROCS default. The worker count never affects numeric results,
// only wall-clock time.
func (p *Population) SetWorkers(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	p.workers = n
}

func (p *Population) PendulumA() Params { return p.pendulumA }
func (p *Population) PendulumB() Params { return p.pendulumB }
func (p *Population) Len() int          { return len(p.trajs) }

// Trajectories exposes the live backing slice for read access by renderers
// and snapshotting. Callers must not mutate it during a batch step.
func (p *Population) Trajectories() []Trajectory { return p.trajs }

// StepAll advances every trajectory by one dt step.
func (p *Population) StepAll(dt float64) {
	p.StepAllN(dt, 1)
}

// StepAllN advances every trajectory by n sequential dt steps. Workers own
// disjoint contiguous index ranges, so no synchronization happens inside the
// batch; the shared Params are read-only. Each trajectory sees the exact same
// sequence of floating-point operations regardless of the worker count.
func (p *Population) StepAllN(dt float64, n int) {
	pa, pb := p.pendulumA, p.pendulumB
	parallelFor(len(p.trajs), p.workers, func(start, end int) {
		for i := start; i < end; i++ {
			p.trajs[i].StepN(pa, pb, dt, n)
		}
	})
}

// parallelFor fans fn out over [0, count) in contiguous chunks across at
// most workers goroutines and waits for all of them.
func parallelFor(count, workers int, fn func(start, end int)) {
	if count <= minChunk || workers <= 1 {
		fn(0, count)
		return
	}

	if count/minChunk < workers {
		workers = count / minChunk
	}
	chunk := (count + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > count {
			end = count
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
