package cli

import (
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/torqlab/motorbench/characteristics"
)

// reportPayload is the JSON shape for a characteristics report. Metrics
// whose inputs were absent are omitted entirely (JSON has no NaN).
type reportPayload struct {
	Name    string                   `json:"name,omitempty"`
	Dec     int                      `json:"dec"`
	Metrics []characteristics.Metric `json:"metrics"`
}

func newReportPayload(name string, rep *characteristics.Report, dec int) reportPayload {
	payload := reportPayload{Name: name, Dec: dec}
	for _, m := range rep.Metrics() {
		if math.IsNaN(m.Value) {
			continue
		}
		payload.Metrics = append(payload.Metrics, m)
	}
	return payload
}

// renderReportText writes the report as an aligned label/value/unit table.
// NaN metrics (absent optional inputs) are skipped. Values are printed with
// English number formatting at full %g precision of the rounded report.
func renderReportText(w io.Writer, name string, rep *characteristics.Report) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	if name != "" {
		b.WriteString("Motor: " + name + "\n")
	}
	for _, m := range rep.Metrics() {
		if math.IsNaN(m.Value) {
			continue
		}
		line := p.Sprintf("%-26s %10g  %s", m.Label, m.Value, m.Unit)
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
