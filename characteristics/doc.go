// Package characteristics derives DC motor performance metrics from
// nameplate parameters.
//
// Every metric is a closed-form function of some subset of seven inputs:
//   - Nominal voltage (V)           [V]
//   - No-load speed (w0)            [rad/s]
//   - Terminal resistance (R)       [Ohm]
//   - Terminal inductance (L)       [H]
//   - Power rating (P)              [W]
//   - No-load current (I0)          [A]
//   - Rotor inertia (J)             [kg*m^2]
//
// The package has two layers:
//
// Raw formulas (TorqueConstant, StallTorque, ...) are pure single-expression
// evaluations with full float64 semantics: a zero denominator yields ±Inf and
// a negative square-root argument yields NaN. They never validate, round, or
// panic, and identical inputs always produce identical outputs.
//
// The validated layer (Params, Characterize) checks physical preconditions
// up front and reports the first violation as a *ParamError with a stable
// code, then evaluates every formula whose inputs are present.
//
// Rounding is uniform and opt-in via Round; the raw formulas always return
// full precision.
//
// Reference: Lynch, Marchuk, Elwin, "Embedded Computing and Mechatronics
// with the PIC32 Microcontroller" (2016), ch. 25.
package characteristics
