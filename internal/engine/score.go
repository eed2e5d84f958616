package engine

// Clamping is part of the scoring contract: compounding penalties and
// bonuses must never push a score outside its documented interval.

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// spread returns the mean absolute deviation of a series normalized by its
// mean magnitude, clamped to [0,1]. Used to turn raw pitch/energy series
// into a dispersion estimate.
func spread(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	m := mean(series)
	if m == 0 {
		return 0
	}
	dev := 0.0
	for _, v := range series {
		d := v - m
		if d < 0 {
			d = -d
		}
		dev += d
	}
	dev /= float64(len(series))
	norm := m
	if norm < 0 {
		norm = -norm
	}
	return clamp01(dev / norm)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
