package characteristics

import "math"

// TorqueConstant returns the torque constant k_t [N·m/A] from the nominal
// voltage v [V] and the no-load speed w0 [rad/s].
func TorqueConstant(v, w0 float64) float64 {
	return v / w0
}

// ElectricalConstant returns the electrical (back-EMF) constant k_e
// [V·s/rad]. Numerically identical to TorqueConstant in SI units.
func ElectricalConstant(v, w0 float64) float64 {
	return v / w0
}

// SpeedConstant returns the speed constant k_s [rad/(V·s)], the reciprocal
// of the electrical constant.
func SpeedConstant(v, w0 float64) float64 {
	return w0 / v
}

// MotorConstant returns the motor constant k_m [N·m/√W] from the nominal
// voltage v [V], no-load speed w0 [rad/s] and terminal resistance r [Ohm].
func MotorConstant(v, w0, r float64) float64 {
	return v / (w0 * math.Sqrt(r))
}

// MaxContinuousCurrent returns the maximum continuous current I_cont [A]
// from the power rating p [W] and terminal resistance r [Ohm].
func MaxContinuousCurrent(p, r float64) float64 {
	return math.Sqrt(p / r)
}

// MaxContinuousTorque returns the maximum continuous torque tau_cont [N·m]
// from the power rating p [W], terminal resistance r [Ohm], nominal voltage
// v [V] and no-load speed w0 [rad/s].
//
// The no-load speed is a real input of this formula even though tabulations
// of it often list only P, R and V; it is declared explicitly here.
func MaxContinuousTorque(p, r, v, w0 float64) float64 {
	return v * math.Sqrt(p/r) / w0
}

// ShortCircuitDamping returns the short-circuit damping constant B
// [N·m·s/rad], the viscous damping seen at the shaft when the terminals are
// shorted.
func ShortCircuitDamping(v, w0, r float64) float64 {
	return (v * v) / (w0 * w0 * r)
}

// ElectricalTimeConstant returns T_e = L/R [s] from the terminal inductance
// l [H] and terminal resistance r [Ohm].
func ElectricalTimeConstant(l, r float64) float64 {
	return l / r
}

// MechanicalTimeConstant returns T_m = J·R·w0²/V² [s] from the rotor inertia
// j [kg·m²], terminal resistance r [Ohm], nominal voltage v [V] and no-load
// speed w0 [rad/s].
func MechanicalTimeConstant(j, r, v, w0 float64) float64 {
	return j * r * (w0 * w0) / (v * v)
}

// StallCurrent returns the stall current I_stall = V/R [A].
func StallCurrent(r, v float64) float64 {
	return v / r
}

// StallTorque returns the stall torque tau_stall = V²/(R·w0) [N·m].
func StallTorque(r, v, w0 float64) float64 {
	return (v * v) / (r * w0)
}

// MaxMechanicalPower returns the maximum mechanical output power
// P_max = V²/(4R) [W], delivered at half the no-load speed.
func MaxMechanicalPower(r, v float64) float64 {
	return (v * v) / (4 * r)
}

// MaxEfficiency returns the maximum efficiency (1 − √(I0·R)/V)² as a
// fraction in [0, 1] for physically sensible inputs.
func MaxEfficiency(i0, r, v float64) float64 {
	e := 1 - math.Sqrt(i0*r)/v
	return e * e
}

// Round rounds x to dec decimal places, half away from zero. NaN and ±Inf
// pass through unchanged.
func Round(x float64, dec int) float64 {
	p := math.Pow(10, float64(dec))
	return math.Round(x*p) / p
}
