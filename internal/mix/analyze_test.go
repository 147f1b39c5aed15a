package mix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/mixtint/internal/colour"
)

func TestAnalyzeAllEmptyTargets(t *testing.T) {
	results, err := AnalyzeAll([]colour.Colour{baseColour(255, 0, 0)}, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeAll unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d entries, want 0", len(results))
	}
}

func TestAnalyzeAllEmptyBasis(t *testing.T) {
	_, err := AnalyzeAll(nil, []colour.Colour{targetColour(0, 255, 0)}, DefaultOptions())
	if !errors.Is(err, ErrEmptyBasis) {
		t.Errorf("AnalyzeAll error = %v, want ErrEmptyBasis", err)
	}
}

func TestAnalyzeAllBothEmpty(t *testing.T) {
	// Nothing to do wins over missing basis when there are no targets.
	results, err := AnalyzeAll(nil, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeAll unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d entries, want 0", len(results))
	}
}

func TestAnalyzeAllInvalidOptions(t *testing.T) {
	_, err := AnalyzeAll(
		[]colour.Colour{baseColour(255, 0, 0)},
		[]colour.Colour{targetColour(0, 255, 0)},
		Options{Threshold: -1},
	)
	if err == nil {
		t.Error("AnalyzeAll with negative threshold expected error")
	}
}

func TestAnalyzeAllPreservesTargetOrder(t *testing.T) {
	bases := []colour.Colour{
		baseColour(255, 0, 0),
		baseColour(0, 255, 0),
	}
	targets := []colour.Colour{
		{RGB: colour.RGB{R: 128, G: 128}, Role: colour.RoleTarget, Label: "olive"},
		{RGB: colour.RGB{R: 255}, Role: colour.RoleTarget},
		{RGB: colour.RGB{B: 255}, Role: colour.RoleTarget, Label: "unmixable"},
	}

	results, err := AnalyzeAll(bases, targets, DefaultOptions())
	if err != nil {
		t.Fatalf("AnalyzeAll unexpected error: %v", err)
	}
	if len(results) != len(targets) {
		t.Fatalf("results = %d entries, want %d", len(results), len(targets))
	}

	wantLabels := []string{"olive", "target", "unmixable"}
	wantHexes := []string{"#808000", "#ff0000", "#0000ff"}
	for i, res := range results {
		if res.TargetLabel != wantLabels[i] {
			t.Errorf("result %d label = %q, want %q", i, res.TargetLabel, wantLabels[i])
		}
		if res.TargetHex != wantHexes[i] {
			t.Errorf("result %d hex = %q, want %q", i, res.TargetHex, wantHexes[i])
		}
	}

	// Pure blue is outside the red/green span.
	if results[2].Success {
		t.Error("unmixable target reported success")
	}
	// A result exists for every target even when the fit fails.
	for i, res := range results {
		if len(res.Coefficients) != len(bases) {
			t.Errorf("result %d has %d coefficients, want %d", i, len(res.Coefficients), len(bases))
		}
	}
}

func TestAnalyzeAllParallelMatchesSequential(t *testing.T) {
	bases := []colour.Colour{
		baseColour(255, 0, 0),
		baseColour(0, 255, 0),
		baseColour(0, 0, 255),
		baseColour(128, 128, 128),
	}
	var targets []colour.Colour
	for i := 0; i < 64; i++ {
		targets = append(targets, targetColour(
			uint8(i*4), uint8(255-i*3), uint8(i*2),
		))
	}

	sequential, err := AnalyzeAll(bases, targets, DefaultOptions())
	if err != nil {
		t.Fatalf("sequential AnalyzeAll unexpected error: %v", err)
	}

	parallelOpts := DefaultOptions()
	parallelOpts.Workers = 8
	parallel, err := AnalyzeAll(bases, targets, parallelOpts)
	if err != nil {
		t.Fatalf("parallel AnalyzeAll unexpected error: %v", err)
	}

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel results differ from sequential (-seq +par):\n%s", diff)
	}
}

func TestAnalyzeAllWorkersAboveTargetCount(t *testing.T) {
	results, err := AnalyzeAll(
		[]colour.Colour{baseColour(255, 0, 0)},
		[]colour.Colour{targetColour(255, 0, 0)},
		Options{Threshold: DefaultThreshold, Cutoff: DefaultCutoff, Workers: 16},
	)
	if err != nil {
		t.Fatalf("AnalyzeAll unexpected error: %v", err)
	}
	if len(results) != 1 || !results[0].Success {
		t.Errorf("results = %+v, want single successful result", results)
	}
}
