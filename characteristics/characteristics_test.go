package characteristics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTorqueConstant(t *testing.T) {
	tests := []struct {
		name     string
		v, w0    float64
		dec      int
		expected float64
	}{
		{name: "24V at 754 rad/s", v: 24, w0: 754, dec: 3, expected: 0.032},
		{name: "12V at 314 rad/s", v: 12, w0: 314, dec: 3, expected: 0.038},
		{name: "48V at 523.6 rad/s", v: 48, w0: 523.6, dec: 4, expected: 0.0917},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(TorqueConstant(tt.v, tt.w0), tt.dec)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestElectricalAndSpeedConstantsAreReciprocal(t *testing.T) {
	ke := ElectricalConstant(24, 754)
	ks := SpeedConstant(24, 754)
	assert.InDelta(t, 1.0, ke*ks, 1e-12)
	// k_e and k_t are the same number in SI units.
	assert.Equal(t, TorqueConstant(24, 754), ke)
}

func TestMotorConstant(t *testing.T) {
	// 24 / (754 * sqrt(2))
	got := MotorConstant(24, 754, 2)
	assert.InDelta(t, 24/(754*math.Sqrt2), got, 1e-12)
	assert.InDelta(t, 0.023, Round(got, 3), 1e-9)
}

func TestMaxContinuousCurrent(t *testing.T) {
	assert.InDelta(t, 5.0, MaxContinuousCurrent(50, 2), 1e-12)
}

func TestMaxContinuousTorque(t *testing.T) {
	// No-load speed is an explicit input; the torque is V*sqrt(P/R)/w0.
	got := MaxContinuousTorque(50, 2, 24, 754)
	assert.InDelta(t, 24*5.0/754, got, 1e-12)
	assert.InDelta(t, 0.159, Round(got, 3), 1e-9)
}

func TestShortCircuitDamping(t *testing.T) {
	got := ShortCircuitDamping(24, 754, 2)
	assert.InDelta(t, 576.0/1137032.0, got, 1e-15)
}

func TestElectricalTimeConstant(t *testing.T) {
	got := Round(ElectricalTimeConstant(0.001, 2), 4)
	assert.InDelta(t, 0.0005, got, 1e-12)
}

func TestMechanicalTimeConstant(t *testing.T) {
	got := MechanicalTimeConstant(1e-5, 2, 24, 754)
	assert.InDelta(t, 1e-5*2*754*754/576, got, 1e-15)
}

func TestStallCurrent(t *testing.T) {
	assert.Equal(t, 6.0, Round(StallCurrent(2, 12), 1))
}

func TestStallTorque(t *testing.T) {
	got := StallTorque(2, 12, 754)
	assert.InDelta(t, 144.0/1508.0, got, 1e-15)
	assert.InDelta(t, 0.1, Round(got, 1), 1e-9)
}

func TestMaxMechanicalPower(t *testing.T) {
	assert.Equal(t, 18.0, Round(MaxMechanicalPower(2, 12), 1))
}

func TestMaxEfficiency(t *testing.T) {
	got := MaxEfficiency(0.1, 2, 24)
	e := 1 - math.Sqrt(0.2)/24
	require.InDelta(t, e*e, got, 1e-12)
	assert.Less(t, got, 1.0)
	assert.Greater(t, got, 0.0)
}

func TestReferentialTransparency(t *testing.T) {
	// Identical inputs must produce identical outputs, bit for bit.
	for i := 0; i < 3; i++ {
		assert.Equal(t, StallTorque(2.7, 11.1, 628.3), StallTorque(2.7, 11.1, 628.3))
		assert.Equal(t, MaxEfficiency(0.23, 1.17, 36), MaxEfficiency(0.23, 1.17, 36))
	}
}

func TestZeroDenominators(t *testing.T) {
	tests := []struct {
		name string
		got  float64
	}{
		{name: "torque constant, zero speed", got: TorqueConstant(24, 0)},
		{name: "speed constant, zero voltage", got: SpeedConstant(0, 754)},
		{name: "stall current, zero resistance", got: StallCurrent(0, 12)},
		{name: "stall torque, zero speed", got: StallTorque(2, 12, 0)},
		{name: "electrical time constant, zero resistance", got: ElectricalTimeConstant(0.001, 0)},
		{name: "max mechanical power, zero resistance", got: MaxMechanicalPower(0, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsInf(tt.got, 1), "expected +Inf, got %v", tt.got)
		})
	}
}

func TestNegativeSqrtDomain(t *testing.T) {
	assert.True(t, math.IsNaN(MaxContinuousCurrent(-50, 2)))
	assert.True(t, math.IsNaN(MaxContinuousCurrent(50, -2)))
	assert.True(t, math.IsNaN(MotorConstant(24, 754, -2)))
	assert.True(t, math.IsNaN(MaxEfficiency(-0.1, 2, 24)))
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		dec      int
		expected float64
	}{
		{name: "one place default", x: 6.04, dec: 1, expected: 6.0},
		{name: "half rounds away from zero", x: 0.25, dec: 1, expected: 0.3},
		{name: "negative half rounds away from zero", x: -0.25, dec: 1, expected: -0.3},
		{name: "four places", x: 0.00054321, dec: 4, expected: 0.0005},
		{name: "zero places", x: 17.5, dec: 0, expected: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round(tt.x, tt.dec), 1e-12)
		})
	}

	t.Run("NaN passes through", func(t *testing.T) {
		assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	})
	t.Run("Inf passes through", func(t *testing.T) {
		assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
	})
}
