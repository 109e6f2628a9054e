package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func makeWAV(sampleRate, channels int, samples []int16) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestDecodeWAVMono(t *testing.T) {
	pcm := []int16{0, 16384, -16384, 32767}
	samples, rate, err := DecodeWAV(makeWAV(TargetSampleRate, 1, pcm))
	if err != nil {
		t.Fatalf("DecodeWAV: %v", err)
	}
	if rate != TargetSampleRate {
		t.Errorf("rate = %d, want %d", rate, TargetSampleRate)
	}
	if len(samples) != len(pcm) {
		t.Fatalf("got %d samples, want %d", len(samples), len(pcm))
	}
	if math.Abs(samples[1]-0.5) > 0.001 {
		t.Errorf("samples[1] = %f, want 0.5", samples[1])
	}
	if math.Abs(samples[2]+0.5) > 0.001 {
		t.Errorf("samples[2] = %f, want -0.5", samples[2])
	}
}

func TestDecodeWAVStereoAveraged(t *testing.T) {
	// Interleaved L/R pairs; output is their average.
	pcm := []int16{16384, -16384, 8192, 8192}
	samples, _, err := DecodeWAV(makeWAV(TargetSampleRate, 2, pcm))
	if err != nil {
		t.Fatalf("DecodeWAV: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if math.Abs(samples[0]) > 0.001 {
		t.Errorf("samples[0] = %f, want 0 (L and R cancel)", samples[0])
	}
	if math.Abs(samples[1]-0.25) > 0.001 {
		t.Errorf("samples[1] = %f, want 0.25", samples[1])
	}
}

func TestDecodeWAVResamples(t *testing.T) {
	pcm := make([]int16, 32000) // 1 second at 32kHz
	samples, rate, err := DecodeWAV(makeWAV(32000, 1, pcm))
	if err != nil {
		t.Fatalf("DecodeWAV: %v", err)
	}
	if rate != TargetSampleRate {
		t.Errorf("rate = %d, want %d", rate, TargetSampleRate)
	}
	if len(samples) != TargetSampleRate {
		t.Errorf("got %d samples, want %d after resampling", len(samples), TargetSampleRate)
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("not audio at all"),
		[]byte("RIFF????NOPE"),
	}
	for _, c := range cases {
		if _, _, err := DecodeWAV(c); !errors.Is(err, ErrDecode) {
			t.Errorf("DecodeWAV(%q) err = %v, want ErrDecode", c, err)
		}
	}
}

func TestLoadBytesSniffing(t *testing.T) {
	wav := makeWAV(TargetSampleRate, 1, []int16{0, 1, 2, 3})
	if _, _, err := LoadBytes(wav); err != nil {
		t.Errorf("LoadBytes(wav) = %v, want nil", err)
	}
	if _, _, err := LoadBytes([]byte("mystery payload")); !errors.Is(err, ErrDecode) {
		t.Errorf("LoadBytes(garbage) err = %v, want ErrDecode", err)
	}
}
