package analytics

// ChangeRate returns the percentage change from old to new. A zero baseline
// with no change reads as 0; a zero baseline with any increase reads as a
// full 100% change so that it classifies as worsening rather than producing
// NaN or Inf.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		}
		return float64(100)
	}

	return (new - old) / old * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
