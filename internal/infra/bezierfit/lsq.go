package bezierfit

import "math"

// bernsteinBasis computes the i-th Bernstein basis polynomial of degree n
// at parameter t.
func bernsteinBasis(i, n int, t float64) float64 {
	coeff := 1.0
	for k := 0; k < i; k++ {
		coeff = coeff * float64(n-k) / float64(k+1)
	}
	return coeff * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// solveLinear solves m x = rhs by Gaussian elimination with partial
// pivoting. It reports false for a singular system. The inputs are not
// modified.
func solveLinear(m [][]float64, rhs []float64) ([]float64, bool) {
	n := len(m)
	a := make([][]float64, n)
	for i := range m {
		a[i] = make([]float64, n+1)
		copy(a[i], m[i])
		a[i][n] = rhs[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-14 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			for k := col; k <= n; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := a[row][n]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, true
}
