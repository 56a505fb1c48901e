package dataset

// ProgressMatrix labels each of n positions with a coarse "fraction of
// track completed" category, one-hot over categories columns. Position
// rows are bucketed evenly; the remainder rows the integer division
// leaves at the end belong to the last category. Computed once per
// composition at load time; window sampling slices it, never
// recomputes it.
func ProgressMatrix(n, categories int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, categories)
	}

	step := n / categories
	for c := 0; c < categories; c++ {
		for i := c * step; i < (c+1)*step; i++ {
			m[i][c] = 1
		}
	}

	// When n divides evenly there are no remainder rows and this loop
	// does not run.
	for i := categories * step; i < n; i++ {
		m[i][categories-1] = 1
	}

	return m
}
