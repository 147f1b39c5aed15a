package mix

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/mixtint/internal/colour"
)

// ErrEmptyBasis is returned when a decomposition is requested with no
// base colours. It is not retryable: the caller must supply data.
var ErrEmptyBasis = errors.New("no base colours in basis")

// Default tuning values. Both are configurable per run through Options.
const (
	// DefaultThreshold is the maximum residual, in normalized space,
	// for a decomposition to count as successful (~12.75 per channel
	// on the 0-255 scale).
	DefaultThreshold = 0.05

	// DefaultCutoff is the negligibility cutoff below which a fitted
	// coefficient is treated as zero in the contributions list.
	DefaultCutoff = 1e-3
)

// Options configures a decomposition run.
type Options struct {
	// Threshold is the maximum residual error for Success.
	Threshold float64

	// Cutoff is the negligibility cutoff for Contributions.
	Cutoff float64

	// Workers sets parallel fan-out across targets in AnalyzeAll.
	// Values below 2 run sequentially.
	Workers int
}

// DefaultOptions returns Options with the standard threshold and cutoff.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Cutoff:    DefaultCutoff,
	}
}

// Validate checks the options for structural validity.
func (o Options) Validate() error {
	if o.Threshold < 0 {
		return fmt.Errorf("threshold must be non-negative, got %v", o.Threshold)
	}
	if o.Cutoff < 0 {
		return fmt.Errorf("cutoff must be non-negative, got %v", o.Cutoff)
	}
	return nil
}

// Contribution pairs a basis colour with its fitted coefficient. Only
// coefficients above the negligibility cutoff become contributions.
type Contribution struct {
	Index       int     `json:"index"`
	BaseHex     string  `json:"base_hex"`
	Coefficient float64 `json:"coefficient"`
}

// Result is one decomposition: the fitted mixing proportions for a
// single target colour against the basis.
type Result struct {
	TargetLabel string     `json:"target_label"`
	TargetHex   string     `json:"target_hex"`
	TargetRGB   colour.RGB `json:"target_rgb"`

	// Coefficients is index-aligned with the basis: one non-negative
	// value per base colour.
	Coefficients []float64 `json:"coefficients"`

	// Residual is the Euclidean distance between the reconstructed
	// colour and the target in normalized space.
	Residual float64 `json:"residual_error"`

	// Success is exactly Residual <= Options.Threshold.
	Success bool `json:"success"`

	// Contributions lists the basis colours whose coefficient exceeds
	// the cutoff, in basis order.
	Contributions []Contribution `json:"contributions"`
}

// Basis is an immutable snapshot of the base colours for one run. The
// column order fixes the order of coefficients in every Result.
type Basis struct {
	colours []colour.Colour
	cols    [][]float64
}

// NewBasis builds a Basis from the given base colours, normalizing each
// into a matrix column. The input slice is copied, so later mutation of
// the caller's colour list cannot affect a running analysis. Duplicate
// colours are kept as independent columns.
func NewBasis(bases []colour.Colour) (*Basis, error) {
	if len(bases) == 0 {
		return nil, ErrEmptyBasis
	}

	b := &Basis{
		colours: make([]colour.Colour, len(bases)),
		cols:    make([][]float64, len(bases)),
	}
	copy(b.colours, bases)
	for j, base := range bases {
		v := colour.Normalize(base.RGB)
		b.cols[j] = []float64{v[0], v[1], v[2]}
	}
	return b, nil
}

// Len returns the number of basis columns.
func (b *Basis) Len() int {
	return len(b.cols)
}

// Colours returns a snapshot copy of the basis colours in column order.
func (b *Basis) Colours() []colour.Colour {
	out := make([]colour.Colour, len(b.colours))
	copy(out, b.colours)
	return out
}

// Decompose computes the non-negative coefficient vector that best
// reconstructs the target from the basis columns, together with the
// residual error, the success flag, and the contribution list.
func (b *Basis) Decompose(target colour.Vec3, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	return b.decompose(target, opts), nil
}

// decompose is the validated path shared by Decompose and AnalyzeAll.
func (b *Basis) decompose(target colour.Vec3, opts Options) Result {
	t := []float64{target[0], target[1], target[2]}

	coefficients := nnls(b.cols, t)
	res := residualNorm(b.cols, coefficients, t)

	var contributions []Contribution
	for j, a := range coefficients {
		if a > opts.Cutoff {
			contributions = append(contributions, Contribution{
				Index:       j,
				BaseHex:     b.colours[j].Hex(),
				Coefficient: a,
			})
		}
	}

	return Result{
		Coefficients:  coefficients,
		Residual:      res,
		Success:       res <= opts.Threshold,
		Contributions: contributions,
	}
}
