package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden files live in testdata/golden; regenerate with:
//
//	go test ./internal/cli -update

func TestReportCommand_GoldenText(t *testing.T) {
	out, _, err := executeCommand(t, "report", "testdata/reference.yaml", "--dec", "4")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_reference", []byte(out))
}

func TestReportCommand_GoldenJSON(t *testing.T) {
	out, _, err := executeCommand(t, "--format", "json", "report", "testdata/reference.yaml", "--dec", "4")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_reference_json", []byte(out))
}

func TestReportCommand_MinimalNameplate(t *testing.T) {
	out, _, err := executeCommand(t, "report", "testdata/minimal.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Motor: minimal")
	assert.Contains(t, out, "stall current")
	assert.NotContains(t, out, "max continuous torque")
	assert.NotContains(t, out, "mechanical time constant")
}

func TestReportCommand_FileNotFound(t *testing.T) {
	out, _, err := executeCommand(t, "report", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
}

func TestReportCommand_SchemaFailureIsValidationExit(t *testing.T) {
	path := writeNameplate(t, `name: bad
nominal_voltage: 24
no_load_speed: 754
terminal_resistance: -2
`)
	out, _, err := executeCommand(t, "report", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeSchema)
}

func TestReportCommand_VerboseDiagnosticsGoToStderr(t *testing.T) {
	out, errOut, err := executeCommand(t, "--verbose", "--format", "json", "report", "testdata/reference.yaml")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Loaded nameplate")
	assert.NotContains(t, out, "Loaded nameplate")
}
