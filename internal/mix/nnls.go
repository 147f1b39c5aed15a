// Package mix implements the colour mixture decomposition engine: a
// non-negative least-squares solve per target colour against a shared
// basis of base colours.
package mix

import "math"

// Solver tolerances and iteration bounds.
const (
	// gradientTol is the optimality tolerance on the residual gradient.
	gradientTol = 1e-10

	// pivotTol guards the normal-equation solve against singular pivots.
	pivotTol = 1e-12

	// minOuterIterations floors the iteration cap for very small bases.
	minOuterIterations = 30
)

// nnls solves min ‖A·x − b‖₂ subject to x ≥ 0 using the Lawson–Hanson
// active-set method. The matrix is given column-major: cols[j] is the
// j-th column, each of length len(b).
//
// The solve never fails: if the outer iteration cap is reached, the
// best feasible iterate found so far is returned and the caller judges
// quality through the residual alone.
func nnls(cols [][]float64, b []float64) []float64 {
	k := len(cols)

	x := make([]float64, k)
	passive := make([]bool, k)
	banned := make([]bool, k)

	bestX := make([]float64, k)
	bestResidual := residualNorm(cols, x, b)

	maxIter := 3 * k
	if maxIter < minOuterIterations {
		maxIter = minOuterIterations
	}

	for iter := 0; iter < maxIter; iter++ {
		// Gradient of the objective over the active (zeroed) set.
		r := residual(cols, x, b)
		best := -1
		bestW := gradientTol
		for j := 0; j < k; j++ {
			if passive[j] || banned[j] {
				continue
			}
			if w := dot(cols[j], r); w > bestW {
				bestW = w
				best = j
			}
		}
		if best < 0 {
			// No active column can still reduce the residual.
			break
		}
		passive[best] = true

		// Inner feasibility loop: re-solve the unconstrained problem on
		// the passive set until the restricted solution is positive.
		for {
			z, ok := solvePassive(cols, b, passive)
			if !ok {
				// Singular normal equations: the new column is linearly
				// dependent on the passive set (duplicate base colours
				// land here). Exclude it from further selection.
				passive[best] = false
				banned[best] = true
				break
			}
			if allPassivePositive(z, passive) {
				for j := 0; j < k; j++ {
					if passive[j] {
						x[j] = z[j]
					} else {
						x[j] = 0
					}
				}
				break
			}

			// Step from x toward z as far as feasibility allows, then
			// drop the variables that hit zero back to the active set.
			step := math.Inf(1)
			for j := 0; j < k; j++ {
				if passive[j] && z[j] <= 0 {
					if s := x[j] / (x[j] - z[j]); s < step {
						step = s
					}
				}
			}
			for j := 0; j < k; j++ {
				if !passive[j] {
					continue
				}
				x[j] += step * (z[j] - x[j])
				if x[j] <= gradientTol {
					x[j] = 0
					passive[j] = false
				}
			}
		}

		if res := residualNorm(cols, x, b); res < bestResidual {
			bestResidual = res
			copy(bestX, x)
		}
	}

	if residualNorm(cols, x, b) <= bestResidual {
		return x
	}
	return bestX
}

// solvePassive solves the unconstrained least-squares problem restricted
// to the passive columns via the normal equations. Returns a full-length
// vector with zeros outside the passive set, and ok=false when the
// normal matrix is numerically singular.
func solvePassive(cols [][]float64, b []float64, passive []bool) ([]float64, bool) {
	var idx []int
	for j, in := range passive {
		if in {
			idx = append(idx, j)
		}
	}
	p := len(idx)
	if p == 0 {
		return make([]float64, len(cols)), true
	}

	// G = AᵖᵀAᵖ, c = Aᵖᵀb.
	g := make([][]float64, p)
	c := make([]float64, p)
	for a := 0; a < p; a++ {
		g[a] = make([]float64, p)
		for bi := 0; bi < p; bi++ {
			g[a][bi] = dot(cols[idx[a]], cols[idx[bi]])
		}
		c[a] = dot(cols[idx[a]], b)
	}

	sol, ok := solveLinear(g, c)
	if !ok {
		return nil, false
	}

	z := make([]float64, len(cols))
	for a, j := range idx {
		z[j] = sol[a]
	}
	return z, true
}

// solveLinear solves g·x = c in place by Gaussian elimination with
// partial pivoting. Returns ok=false when a pivot falls below pivotTol.
func solveLinear(g [][]float64, c []float64) ([]float64, bool) {
	n := len(c)
	for col := 0; col < n; col++ {
		// Partial pivot.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(g[row][col]) > math.Abs(g[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(g[pivot][col]) < pivotTol {
			return nil, false
		}
		g[col], g[pivot] = g[pivot], g[col]
		c[col], c[pivot] = c[pivot], c[col]

		for row := col + 1; row < n; row++ {
			f := g[row][col] / g[col][col]
			for cc := col; cc < n; cc++ {
				g[row][cc] -= f * g[col][cc]
			}
			c[row] -= f * c[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := c[row]
		for cc := row + 1; cc < n; cc++ {
			sum -= g[row][cc] * x[cc]
		}
		x[row] = sum / g[row][row]
	}
	return x, true
}

func allPassivePositive(z []float64, passive []bool) bool {
	for j, in := range passive {
		if in && z[j] <= 0 {
			return false
		}
	}
	return true
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// residual returns b − A·x.
func residual(cols [][]float64, x, b []float64) []float64 {
	r := make([]float64, len(b))
	copy(r, b)
	for j, col := range cols {
		if x[j] == 0 {
			continue
		}
		for i := range r {
			r[i] -= x[j] * col[i]
		}
	}
	return r
}

// residualNorm returns ‖A·x − b‖₂.
func residualNorm(cols [][]float64, x, b []float64) float64 {
	r := residual(cols, x, b)
	sum := 0.0
	for _, v := range r {
		sum += v * v
	}
	return math.Sqrt(sum)
}
