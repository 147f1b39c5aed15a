package mix

import (
	"math"
	"testing"
)

func TestNNLSExactRecovery(t *testing.T) {
	// Target lies exactly in the non-negative span of the columns.
	cols := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	b := []float64{0.25, 0.5, 0.75}

	x := nnls(cols, b)

	want := []float64{0.25, 0.5, 0.75}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
	if res := residualNorm(cols, x, b); res > 1e-9 {
		t.Errorf("residual = %v, want ~0", res)
	}
}

func TestNNLSClampsNegativeSolution(t *testing.T) {
	// Unconstrained least squares would assign a negative coefficient
	// to the second column; NNLS must clamp it to zero.
	cols := [][]float64{
		{1, 0, 0},
		{1, 1, 0},
	}
	b := []float64{1, -0.5, 0}

	x := nnls(cols, b)

	for i, v := range x {
		if v < -1e-9 {
			t.Errorf("x[%d] = %v, violates non-negativity", i, v)
		}
	}
	if x[1] > 1e-9 {
		t.Errorf("x[1] = %v, want 0 (negative direction clamped)", x[1])
	}
}

func TestNNLSUnreachableTarget(t *testing.T) {
	// A single red column cannot reach pure green: the optimum is the
	// zero vector with residual equal to the target norm.
	cols := [][]float64{{1, 0, 0}}
	b := []float64{0, 1, 0}

	x := nnls(cols, b)

	if x[0] > 1e-9 {
		t.Errorf("x[0] = %v, want 0", x[0])
	}
	if res := residualNorm(cols, x, b); math.Abs(res-1.0) > 1e-9 {
		t.Errorf("residual = %v, want 1.0", res)
	}
}

func TestNNLSDuplicateColumns(t *testing.T) {
	// Duplicate columns are linearly dependent. The solve must still
	// terminate and reconstruct the target exactly with some valid
	// split between the duplicates.
	cols := [][]float64{
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	b := []float64{0.6, 0.3, 0}

	x := nnls(cols, b)

	for i, v := range x {
		if v < -1e-9 {
			t.Errorf("x[%d] = %v, violates non-negativity", i, v)
		}
	}
	if res := residualNorm(cols, x, b); res > 1e-9 {
		t.Errorf("residual = %v, want ~0", res)
	}
	if sum := x[0] + x[1]; math.Abs(sum-0.6) > 1e-9 {
		t.Errorf("duplicate columns sum to %v, want 0.6", sum)
	}
}

func TestSolveLinearSingular(t *testing.T) {
	g := [][]float64{
		{1, 1},
		{1, 1},
	}
	c := []float64{1, 1}

	if _, ok := solveLinear(g, c); ok {
		t.Error("solveLinear on a singular matrix reported ok")
	}
}

func TestSolveLinearKnownSystem(t *testing.T) {
	g := [][]float64{
		{2, 1},
		{1, 3},
	}
	c := []float64{3, 5}

	x, ok := solveLinear(g, c)
	if !ok {
		t.Fatal("solveLinear reported singular for a well-conditioned system")
	}
	// Solution of 2a+b=3, a+3b=5.
	want := []float64{0.8, 1.4}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-9 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
