package audio

// Resample converts a float64 PCM stream between sample rates using
// linear interpolation. Equal rates return the input unchanged.
func Resample(in []float64, fromRate, toRate int) []float64 {
	if fromRate == toRate || len(in) == 0 || fromRate <= 0 || toRate <= 0 {
		return in
	}
	if len(in) < 2 {
		return nil
	}

	outSamples := len(in) * toRate / fromRate
	out := make([]float64, outSamples)
	ratio := float64(fromRate) / float64(toRate)

	for i := 0; i < outSamples; i++ {
		srcPos := float64(i) * ratio
		srcIdx := int(srcPos)
		frac := srcPos - float64(srcIdx)

		s0 := sampleAt(in, srcIdx)
		s1 := sampleAt(in, srcIdx+1)

		out[i] = s0 + frac*(s1-s0)
	}
	return out
}

func sampleAt(in []float64, idx int) float64 {
	if idx >= len(in) {
		idx = len(in) - 1
	}
	if idx < 0 {
		return 0
	}
	return in[idx]
}
