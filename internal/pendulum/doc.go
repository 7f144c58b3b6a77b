// Package pendulum implements the planar double-pendulum ensemble core.
//
// The package models two rigid massless rods with point masses at their
// free ends, swinging without friction under uniform gravity:
//
//   - [Params]: immutable rod length and bob mass for one arm
//   - [ArmState]: one arm's angle and angular velocity
//   - [Trajectory]: the full state of one double pendulum
//   - [Population]: many independent trajectories sharing the same Params,
//     stepped in parallel
//
// Integration uses semi-implicit Euler with a caller-supplied fixed dt.
// Stability is the caller's contract: the integrator performs no internal
// checks, and a large dt will diverge.
//
// # Thread Safety
//
// Params and Trajectory values are plain data. A Population is safe for
// concurrent reads between batch-step calls; StepAll and StepAllN must not
// run concurrently with each other or with readers.
package pendulum
