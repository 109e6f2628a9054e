package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrDecode reports malformed or unsupported audio input.
var ErrDecode = errors.New("audio: decode failed")

// TargetSampleRate is the rate all decoders normalize to before
// analysis.
const TargetSampleRate = 16000

// LoadBytes sniffs the container format and decodes the payload to
// normalized mono float64 samples at TargetSampleRate.
func LoadBytes(data []byte) ([]float64, int, error) {
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("RIFF")):
		return DecodeWAV(data)
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("OggS")):
		return DecodeOggOpus(data)
	default:
		return nil, 0, fmt.Errorf("%w: unrecognized container", ErrDecode)
	}
}

// DecodeWAV parses a RIFF/WAVE payload carrying 16-bit PCM and returns
// mono samples in [-1, 1] resampled to TargetSampleRate. Stereo input
// is averaged to mono.
func DecodeWAV(data []byte) ([]float64, int, error) {
	if len(data) < 12 || !bytes.Equal(data[:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return nil, 0, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrDecode)
	}

	var (
		sampleRate    int
		channels      int
		bitsPerSample int
		pcm           []byte
		haveFmt       bool
	)

	off := 12
	for off+8 <= len(data) {
		chunkID := string(data[off : off+4])
		chunkLen := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if chunkLen < 0 || body+chunkLen > len(data) {
			return nil, 0, fmt.Errorf("%w: truncated %q chunk", ErrDecode, chunkID)
		}

		switch chunkID {
		case "fmt ":
			if chunkLen < 16 {
				return nil, 0, fmt.Errorf("%w: short fmt chunk", ErrDecode)
			}
			format := binary.LittleEndian.Uint16(data[body:])
			if format != 1 {
				return nil, 0, fmt.Errorf("%w: unsupported wav format %d", ErrDecode, format)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14:]))
			haveFmt = true
		case "data":
			pcm = data[body : body+chunkLen]
		}

		// Chunks are word-aligned.
		off = body + chunkLen + chunkLen%2
	}

	if !haveFmt || pcm == nil {
		return nil, 0, fmt.Errorf("%w: missing fmt or data chunk", ErrDecode)
	}
	if bitsPerSample != 16 {
		return nil, 0, fmt.Errorf("%w: unsupported bit depth %d", ErrDecode, bitsPerSample)
	}
	if channels < 1 || channels > 2 {
		return nil, 0, fmt.Errorf("%w: unsupported channel count %d", ErrDecode, channels)
	}
	if sampleRate <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid sample rate %d", ErrDecode, sampleRate)
	}

	frames := len(pcm) / (2 * channels)
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		off := i * 2 * channels
		s := float64(int16(binary.LittleEndian.Uint16(pcm[off:])))
		if channels == 2 {
			r := float64(int16(binary.LittleEndian.Uint16(pcm[off+2:])))
			s = (s + r) / 2
		}
		samples[i] = s / 32768.0
	}

	samples = Resample(samples, sampleRate, TargetSampleRate)
	return samples, TargetSampleRate, nil
}
