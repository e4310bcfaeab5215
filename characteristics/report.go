package characteristics

import (
	"fmt"
	"math"
)

// Params holds the nameplate values for one motor. NominalVoltage,
// NoLoadSpeed and TerminalResistance are always required; the remaining
// fields may be left as NaN when the datasheet does not list them, in which
// case the metrics that depend on them come out as NaN.
type Params struct {
	NominalVoltage     float64 // [V]
	NoLoadSpeed        float64 // [rad/s]
	TerminalResistance float64 // [Ohm]
	TerminalInductance float64 // [H], NaN if unknown
	PowerRating        float64 // [W], NaN if unknown
	NoLoadCurrent      float64 // [A], NaN if unknown
	RotorInertia       float64 // [kg·m²], NaN if unknown
}

// ParamError reports a violated physical precondition on a Params field.
type ParamError struct {
	// Code identifies the violated precondition.
	Code ParamErrorCode

	// Field is the Params field name.
	Field string

	// Value is the offending value.
	Value float64
}

// ParamErrorCode categorizes precondition violations.
type ParamErrorCode string

const (
	// ErrCodeNonPositiveVoltage indicates nominal voltage <= 0 or non-finite.
	ErrCodeNonPositiveVoltage ParamErrorCode = "NON_POSITIVE_VOLTAGE"

	// ErrCodeNonPositiveSpeed indicates no-load speed <= 0 or non-finite.
	ErrCodeNonPositiveSpeed ParamErrorCode = "NON_POSITIVE_SPEED"

	// ErrCodeNonPositiveResistance indicates terminal resistance <= 0 or non-finite.
	ErrCodeNonPositiveResistance ParamErrorCode = "NON_POSITIVE_RESISTANCE"

	// ErrCodeNegativeInductance indicates terminal inductance < 0.
	ErrCodeNegativeInductance ParamErrorCode = "NEGATIVE_INDUCTANCE"

	// ErrCodeNonPositivePower indicates power rating <= 0.
	ErrCodeNonPositivePower ParamErrorCode = "NON_POSITIVE_POWER"

	// ErrCodeNegativeCurrent indicates no-load current < 0.
	ErrCodeNegativeCurrent ParamErrorCode = "NEGATIVE_CURRENT"

	// ErrCodeNonPositiveInertia indicates rotor inertia <= 0.
	ErrCodeNonPositiveInertia ParamErrorCode = "NON_POSITIVE_INERTIA"
)

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %v", e.Code, e.Field, e.Value)
}

// Validate checks the physical preconditions and returns a *ParamError for
// the first violation found. Optional fields left as NaN are not violations;
// an optional field that is set must still be in its physical domain.
func (p Params) Validate() error {
	if !(p.NominalVoltage > 0) || math.IsInf(p.NominalVoltage, 0) {
		return &ParamError{Code: ErrCodeNonPositiveVoltage, Field: "NominalVoltage", Value: p.NominalVoltage}
	}
	if !(p.NoLoadSpeed > 0) || math.IsInf(p.NoLoadSpeed, 0) {
		return &ParamError{Code: ErrCodeNonPositiveSpeed, Field: "NoLoadSpeed", Value: p.NoLoadSpeed}
	}
	if !(p.TerminalResistance > 0) || math.IsInf(p.TerminalResistance, 0) {
		return &ParamError{Code: ErrCodeNonPositiveResistance, Field: "TerminalResistance", Value: p.TerminalResistance}
	}
	if p.TerminalInductance < 0 || math.IsInf(p.TerminalInductance, 0) {
		return &ParamError{Code: ErrCodeNegativeInductance, Field: "TerminalInductance", Value: p.TerminalInductance}
	}
	if p.PowerRating <= 0 || math.IsInf(p.PowerRating, 0) { // NaN compares false
		return &ParamError{Code: ErrCodeNonPositivePower, Field: "PowerRating", Value: p.PowerRating}
	}
	if p.NoLoadCurrent < 0 || math.IsInf(p.NoLoadCurrent, 0) {
		return &ParamError{Code: ErrCodeNegativeCurrent, Field: "NoLoadCurrent", Value: p.NoLoadCurrent}
	}
	if p.RotorInertia <= 0 || math.IsInf(p.RotorInertia, 0) {
		return &ParamError{Code: ErrCodeNonPositiveInertia, Field: "RotorInertia", Value: p.RotorInertia}
	}
	return nil
}

// Report holds every derived metric for one motor. Metrics whose optional
// inputs were absent are NaN.
type Report struct {
	TorqueConstant         float64 // [N·m/A]
	ElectricalConstant     float64 // [V·s/rad]
	SpeedConstant          float64 // [rad/(V·s)]
	MotorConstant          float64 // [N·m/√W]
	MaxContinuousCurrent   float64 // [A]
	MaxContinuousTorque    float64 // [N·m]
	ShortCircuitDamping    float64 // [N·m·s/rad]
	ElectricalTimeConstant float64 // [s]
	MechanicalTimeConstant float64 // [s]
	StallCurrent           float64 // [A]
	StallTorque            float64 // [N·m]
	MaxMechanicalPower     float64 // [W]
	MaxEfficiency          float64 // fraction
}

// Characterize validates p and evaluates every metric. NaN optional inputs
// propagate into the dependent metrics; everything derivable from the
// required three inputs is always present.
func Characterize(p Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	v, w0, r := p.NominalVoltage, p.NoLoadSpeed, p.TerminalResistance
	return &Report{
		TorqueConstant:         TorqueConstant(v, w0),
		ElectricalConstant:     ElectricalConstant(v, w0),
		SpeedConstant:          SpeedConstant(v, w0),
		MotorConstant:          MotorConstant(v, w0, r),
		MaxContinuousCurrent:   MaxContinuousCurrent(p.PowerRating, r),
		MaxContinuousTorque:    MaxContinuousTorque(p.PowerRating, r, v, w0),
		ShortCircuitDamping:    ShortCircuitDamping(v, w0, r),
		ElectricalTimeConstant: ElectricalTimeConstant(p.TerminalInductance, r),
		MechanicalTimeConstant: MechanicalTimeConstant(p.RotorInertia, r, v, w0),
		StallCurrent:           StallCurrent(r, v),
		StallTorque:            StallTorque(r, v, w0),
		MaxMechanicalPower:     MaxMechanicalPower(r, v),
		MaxEfficiency:          MaxEfficiency(p.NoLoadCurrent, r, v),
	}, nil
}

// Rounded returns a copy of the report with every metric rounded to dec
// decimal places. NaN metrics stay NaN.
func (r *Report) Rounded(dec int) *Report {
	out := *r
	for _, v := range out.metricValues() {
		*v = Round(*v, dec)
	}
	return &out
}

// Metric is one derived quantity with its display label and unit.
type Metric struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// Metrics returns the report's metrics in presentation order.
func (r *Report) Metrics() []Metric {
	return []Metric{
		{Key: "torque_constant", Label: "torque constant", Unit: "N·m/A", Value: r.TorqueConstant},
		{Key: "electrical_constant", Label: "electrical constant", Unit: "V·s/rad", Value: r.ElectricalConstant},
		{Key: "speed_constant", Label: "speed constant", Unit: "rad/(V·s)", Value: r.SpeedConstant},
		{Key: "motor_constant", Label: "motor constant", Unit: "N·m/√W", Value: r.MotorConstant},
		{Key: "max_continuous_current", Label: "max continuous current", Unit: "A", Value: r.MaxContinuousCurrent},
		{Key: "max_continuous_torque", Label: "max continuous torque", Unit: "N·m", Value: r.MaxContinuousTorque},
		{Key: "short_circuit_damping", Label: "short-circuit damping", Unit: "N·m·s/rad", Value: r.ShortCircuitDamping},
		{Key: "electrical_time_constant", Label: "electrical time constant", Unit: "s", Value: r.ElectricalTimeConstant},
		{Key: "mechanical_time_constant", Label: "mechanical time constant", Unit: "s", Value: r.MechanicalTimeConstant},
		{Key: "stall_current", Label: "stall current", Unit: "A", Value: r.StallCurrent},
		{Key: "stall_torque", Label: "stall torque", Unit: "N·m", Value: r.StallTorque},
		{Key: "max_mechanical_power", Label: "max mechanical power", Unit: "W", Value: r.MaxMechanicalPower},
		{Key: "max_efficiency", Label: "max efficiency", Unit: "", Value: r.MaxEfficiency},
	}
}

// metricValues exposes the metric fields for uniform in-place rounding.
func (r *Report) metricValues() []*float64 {
	return []*float64{
		&r.TorqueConstant, &r.ElectricalConstant, &r.SpeedConstant,
		&r.MotorConstant, &r.MaxContinuousCurrent, &r.MaxContinuousTorque,
		&r.ShortCircuitDamping, &r.ElectricalTimeConstant,
		&r.MechanicalTimeConstant, &r.StallCurrent, &r.StallTorque,
		&r.MaxMechanicalPower, &r.MaxEfficiency,
	}
}
