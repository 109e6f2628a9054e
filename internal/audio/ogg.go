package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pion/opus"
	"github.com/pion/webrtc/v4/pkg/media/oggreader"
)

const opusRate = 48000

// DecodeOggOpus decodes an Ogg/Opus payload, such as a voice note, to
// normalized mono float64 samples at TargetSampleRate. Each Ogg page
// is treated as one Opus packet; undecodable packets are skipped so a
// damaged tail does not discard the whole recording.
func DecodeOggOpus(data []byte) ([]float64, int, error) {
	ogg, _, err := oggreader.NewWith(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	decoder := &opus.Decoder{}
	// 20ms at 48kHz, possibly stereo, 2 bytes per sample.
	pcmBuf := make([]byte, 960*2*2)

	var samples []float64
	for {
		packet, _, err := ogg.ParseNextPage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if len(packet) == 0 ||
			bytes.HasPrefix(packet, []byte("OpusHead")) ||
			bytes.HasPrefix(packet, []byte("OpusTags")) {
			continue
		}

		_, isStereo, err := decoder.Decode(packet, pcmBuf)
		if err != nil {
			continue
		}

		channels := 1
		if isStereo {
			channels = 2
		}
		frameSamples := 960
		for i := 0; i < frameSamples; i++ {
			off := i * channels * 2
			if off+1 >= len(pcmBuf) {
				break
			}
			s := float64(int16(binary.LittleEndian.Uint16(pcmBuf[off:])))
			if isStereo && off+3 < len(pcmBuf) {
				r := float64(int16(binary.LittleEndian.Uint16(pcmBuf[off+2:])))
				s = (s + r) / 2
			}
			samples = append(samples, s/32768.0)
		}
	}

	if len(samples) == 0 {
		return nil, 0, fmt.Errorf("%w: no decodable opus packets", ErrDecode)
	}

	samples = Resample(samples, opusRate, TargetSampleRate)
	return samples, TargetSampleRate, nil
}
