package analysis

import (
	"math"
	"sort"
)

// Default short-time analysis grid. Frames overlap: consecutive frames
// start hopLength samples apart and cover frameLength samples each.
const (
	defaultFrameLength = 2048
	defaultHopLength   = 512
)

// frameRMS computes root-mean-square energy over overlapping frames.
// The final frame may be shorter than frameLen when the signal ends.
func frameRMS(samples []float64, frameLen, hop int) []float64 {
	if len(samples) == 0 || frameLen <= 0 || hop <= 0 {
		return nil
	}

	var energies []float64
	for start := 0; start < len(samples); start += hop {
		end := start + frameLen
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for _, s := range samples[start:end] {
			sumSquares += s * s
		}
		energies = append(energies, math.Sqrt(sumSquares/float64(end-start)))
	}
	return energies
}

// percentile returns the p-th percentile (0-100) of values using linear
// interpolation between order statistics.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
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

// stddev is the population standard deviation.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
