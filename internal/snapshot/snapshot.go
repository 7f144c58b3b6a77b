// Package snapshot persists a population as a human-readable JSON document
// and rebuilds one from it. The document mirrors the data model exactly: two
// parameter records plus the ordered list of arm-state pairs. Written once at
// shutdown; not designed for mid-run resume.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seralo/chaoscope/internal/pendulum"
)

type Document struct {
	PendulumA Arm         `json:"pendulum_a"`
	PendulumB Arm         `json:"pendulum_b"`
	States    []PairState `json:"trajectories"`
}

type Arm struct {
	Length float64 `json:"length"`
	Mass   float64 `json:"mass"`
}

type PairState struct {
	A ArmState `json:"a"`
	B ArmState `json:"b"`
}

type ArmState struct {
	Angle    float64 `json:"angle"`
	Velocity float64 `json:"angular_velocity"`
}

// Capture copies the population into a serializable document.
func Capture(pop *pendulum.Population) *Document {
	trajs := pop.Trajectories()
	doc := &Document{
		PendulumA: Arm{Length: pop.PendulumA().Length(), Mass: pop.PendulumA().Mass()},
		PendulumB: Arm{Length: pop.PendulumB().Length(), Mass: pop.PendulumB().Mass()},
		States:    make([]PairState, len(trajs)),
	}
	for i, traj := range trajs {
		doc.States[i] = PairState{
			A: ArmState{Angle: traj.A.Angle, Velocity: traj.A.Velocity},
			B: ArmState{Angle: traj.B.Angle, Velocity: traj.B.Velocity},
		}
	}
	return doc
}

// Save writes the population to path as pretty-printed JSON, creating parent
// directories as needed.
func Save(path string, pop *pendulum.Population) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Capture(pop)); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

// Read parses a snapshot document without building a population, for
// inspection tooling.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &doc, nil
}

// Load reconstructs a population from a snapshot, running the document back
// through the validating constructors so a hand-edited file cannot smuggle in
// non-positive parameters.
func Load(path string) (*pendulum.Population, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	return doc.Population()
}

// Population rebuilds the live model from the document.
func (d *Document) Population() (*pendulum.Population, error) {
	pa, err := pendulum.NewParams(d.PendulumA.Length, d.PendulumA.Mass)
	if err != nil {
		return nil, fmt.Errorf("pendulum_a: %w", err)
	}
	pb, err := pendulum.NewParams(d.PendulumB.Length, d.PendulumB.Mass)
	if err != nil {
		return nil, fmt.Errorf("pendulum_b: %w", err)
	}

	trajs := make([]pendulum.Trajectory, len(d.States))
	for i, s := range d.States {
		trajs[i] = pendulum.Trajectory{
			A: pendulum.ArmState{Angle: s.A.Angle, Velocity: s.A.Velocity},
			B: pendulum.ArmState{Angle: s.B.Angle, Velocity: s.B.Velocity},
		}
	}
	return pendulum.NewPopulation(pa, pb, trajs)
}
