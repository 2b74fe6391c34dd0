package dataset

// SafeRatio returns num/den, or 1.0 when den is zero.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 1.0
	}
	return num / den
}

// BaseX spreads n items evenly across [-8, 8].
func BaseX(i, n int) float64 {
	return -8 + 16*SafeRatio(float64(i), float64(n-1))
}

// BaseY maps a count onto [-5, 5] relative to the maximum count.
func BaseY(count, maxCount int) float64 {
	return -5 + 10*SafeRatio(float64(count), float64(maxCount))
}

// HeartScales maps counts linearly onto [lo, hi] using the min/max of counts.
func HeartScales(counts []int, lo, hi float64) []float64 {
	scales := make([]float64, len(counts))
	if len(counts) == 0 {
		return scales
	}

	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}

	for i, c := range counts {
		scales[i] = lo + SafeRatio(float64(c-min), float64(max-min))*(hi-lo)
	}
	return scales
}
