package cli

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/torqlab/motorbench/characteristics"
)

//go:embed schema.cue
var nameplateSchema string

// Nameplate is one motor's YAML document. Optional fields are pointers so
// that an absent key is distinguishable from an explicit zero.
type Nameplate struct {
	Name               string   `yaml:"name"`
	NominalVoltage     float64  `yaml:"nominal_voltage"`
	NoLoadSpeed        float64  `yaml:"no_load_speed"`
	TerminalResistance float64  `yaml:"terminal_resistance"`
	TerminalInductance *float64 `yaml:"terminal_inductance"`
	PowerRating        *float64 `yaml:"power_rating"`
	NoLoadCurrent      *float64 `yaml:"no_load_current"`
	RotorInertia       *float64 `yaml:"rotor_inertia"`
}

// Params converts the nameplate to characteristics.Params, mapping absent
// optional fields to NaN.
func (n *Nameplate) Params() characteristics.Params {
	return characteristics.Params{
		NominalVoltage:     n.NominalVoltage,
		NoLoadSpeed:        n.NoLoadSpeed,
		TerminalResistance: n.TerminalResistance,
		TerminalInductance: orNaN(n.TerminalInductance),
		PowerRating:        orNaN(n.PowerRating),
		NoLoadCurrent:      orNaN(n.NoLoadCurrent),
		RotorInertia:       orNaN(n.RotorInertia),
	}
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// LoadError represents an error that occurred during nameplate loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes for nameplate loading and CLI operations.
const (
	ErrCodeGeneric   = "E001" // Generic/unknown error
	ErrCodeNotFound  = "E002" // Nameplate file not found
	ErrCodeReadError = "E003" // Nameplate file unreadable
	ErrCodeBadYAML   = "E004" // YAML syntax error
	ErrCodeSchema    = "E005" // Schema validation failed
	ErrCodeBadParams = "E006" // Physical precondition violated
	ErrCodeBadFlags  = "E007" // Invalid flag combination
)

// LoadNameplate reads a YAML nameplate file, validates it against the
// embedded CUE schema and decodes it. Schema validation runs before
// decoding so that a malformed document is reported with field-level
// diagnostics rather than a Go unmarshalling error.
func LoadNameplate(path string) (*Nameplate, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("nameplate file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadError, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return ParseNameplate(path, data)
}

// ParseNameplate validates and decodes a YAML nameplate document. The path
// is used only for diagnostics.
func ParseNameplate(path string, data []byte) (*Nameplate, error) {
	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadYAML, Message: fmt.Sprintf("parsing %s: %v", path, err)}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(nameplateSchema).LookupPath(cue.ParsePath("#Nameplate"))
	if schema.Err() != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("compiling nameplate schema: %v", schema.Err())}
	}

	doc := ctx.BuildFile(file)
	if doc.Err() != nil {
		return nil, &LoadError{Code: ErrCodeBadYAML, Message: fmt.Sprintf("building %s: %v", path, doc.Err())}
	}

	if err := schema.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: cueerrors.Details(err, nil)}
	}

	var np Nameplate
	if err := yaml.Unmarshal(data, &np); err != nil {
		return nil, &LoadError{Code: ErrCodeBadYAML, Message: fmt.Sprintf("decoding %s: %v", path, err)}
	}
	return &np, nil
}
