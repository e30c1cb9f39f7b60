package calculator

// OrderBookImbalance returns the signed depth ratio
// (bidVolume - askVolume) / (bidVolume + askVolume), in [-1, 1].
// Returns 0 when both sides are empty.
func OrderBookImbalance(bidVolume, askVolume float64) float64 {
	total := bidVolume + askVolume
	if total == 0 {
		return 0
	}
	return (bidVolume - askVolume) / total
}

// IsVolumeSpike reports whether the latest volume is at least multiplier
// times the mean of all prior volumes. Needs at least two bars and a
// non-zero baseline.
func IsVolumeSpike(volumes []float64, multiplier float64) bool {
	if len(volumes) < 2 {
		return false
	}
	var sum float64
	for _, v := range volumes[:len(volumes)-1] {
		sum += v
	}
	baseline := sum / float64(len(volumes)-1)
	if baseline == 0 {
		return false
	}
	return volumes[len(volumes)-1] >= baseline*multiplier
}
