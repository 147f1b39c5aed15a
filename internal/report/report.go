package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/mixtint/internal/colour"
	"github.com/jmylchreest/mixtint/internal/mix"
)

// Report couples the basis snapshot with the per-target decomposition
// results. Base order matches the coefficient order in every result.
type Report struct {
	Bases   []colour.Colour
	Results []mix.Result

	// Cutoff mirrors the negligibility cutoff used for the solve:
	// coefficients at or below it render as empty cells.
	Cutoff float64
}

// New builds a Report over the given basis colours and results.
func New(bases []colour.Colour, results []mix.Result, cutoff float64) *Report {
	return &Report{Bases: bases, Results: results, Cutoff: cutoff}
}

// FormatCoefficient formats a fitted coefficient for a grid cell:
// three decimal places, or the empty string when the value does not
// exceed the cutoff. Downstream consumers rely on this exact contract.
func FormatCoefficient(a, cutoff float64) string {
	if a > cutoff {
		return fmt.Sprintf("%.3f", a)
	}
	return ""
}

// Headers returns the grid header row: the target column followed by
// one "label (#hex)" column per base colour.
func (r *Report) Headers() []string {
	headers := make([]string, 0, len(r.Bases)+1)
	headers = append(headers, "target")
	for _, base := range r.Bases {
		headers = append(headers, fmt.Sprintf("%s (%s)", base.DisplayLabel(), base.Hex()))
	}
	return headers
}

// Rows returns one grid row per result: the target hex followed by the
// formatted coefficient for each base column.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		row := make([]string, 0, len(res.Coefficients)+1)
		row = append(row, res.TargetHex)
		for _, a := range res.Coefficients {
			row = append(row, FormatCoefficient(a, r.Cutoff))
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderTable renders the result grid as a text table. With preview
// enabled, each row is prefixed with an ANSI colour block for its
// target (the stand-in for the original cell background colouring).
func (r *Report) RenderTable(preview bool) string {
	table := NewTable(r.Headers())
	for _, row := range r.Rows() {
		table.AddRow(row)
	}
	rendered := table.Render()
	if !preview {
		return rendered
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	var out strings.Builder
	blank := strings.Repeat(" ", 4)
	for i, line := range lines {
		// Header and separator rows carry no colour.
		if i < 2 {
			out.WriteString(blank + "  " + line + "\n")
			continue
		}
		res := r.Results[i-2]
		out.WriteString(colour.ColourPreview(res.TargetRGB, 4) + "  " + line + "\n")
	}
	return out.String()
}

// WriteCSV writes the result grid as CSV, the spreadsheet-compatible
// equivalent of the original workbook export. Cell colouring is a
// renderer concern; hex codes in the header and target column carry
// the colour information instead.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Headers()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range r.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// reportJSON is the JSON output shape.
type reportJSON struct {
	Bases   []baseJSON   `json:"bases"`
	Results []mix.Result `json:"results"`
}

type baseJSON struct {
	Label string     `json:"label"`
	Hex   string     `json:"hex"`
	RGB   colour.RGB `json:"rgb"`
}

// WriteJSON writes the basis snapshot and results as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	out := reportJSON{
		Bases:   make([]baseJSON, len(r.Bases)),
		Results: r.Results,
	}
	for i, base := range r.Bases {
		out.Bases[i] = baseJSON{
			Label: base.DisplayLabel(),
			Hex:   base.Hex(),
			RGB:   base.RGB,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
