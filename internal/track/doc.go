// Package track simulates a marble confined to a circular 1-D track,
// driven by an in-plane gravity vector.
//
// The model is deliberately simple: per fixed timestep, friction damps the
// marble's linear speed, the tangential component of gravity accelerates
// it, and the new speed integrates into an angular position that wraps on
// the closed [0, 360) domain.
//
//   - [Geometry]: immutable track constants (diameter, friction, scale)
//   - [Marble]: position/speed state, advanced by value each tick
//   - [Gravity]: direction/magnitude pair from the tilt sensor
//   - [Physics]: owns a Geometry and steps Marbles with [Physics.Tick]
//
// Tick always integrates with the nominal fixed dt of the control loop,
// never with measured elapsed time; simulated dynamics stay identical even
// when wall-clock scheduling drifts.
package track
