package pendulum

import "errors"

// Domain errors for ensemble construction and queries.
var (
	// ErrInvalidParams indicates a non-positive rod length or bob mass.
	ErrInvalidParams = errors.New("pendulum: length and mass must be positive")

	// ErrEmptyPopulation indicates a population with no trajectories.
	ErrEmptyPopulation = errors.New("pendulum: population needs at least one trajectory")

	// ErrDivergenceRange indicates a per-arm divergence ratio outside [0, 1].
	// Given normalized angles this should never happen; it points at an
	// upstream normalization bug rather than bad user input.
	ErrDivergenceRange = errors.New("pendulum: divergence ratio out of [0, 1]")
)
