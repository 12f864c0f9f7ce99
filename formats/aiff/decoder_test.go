// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiffReader feeds canned int samples through the aiffReader seam.
type fakeAiffReader struct {
	data []int
	pos  int
}

func (f *fakeAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := min(len(buf.Data), len(f.data)-f.pos)
	copy(buf.Data, f.data[f.pos:f.pos+n])
	f.pos += n
	return n, nil
}

func TestSource_ConvertsToFloat(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{data: []int{16384, -16384, 0, -32768}},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 0.0, -1.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{data: []int{100, 200}},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{data: []int{1}},
		sampleRate: 44100,
		channels:   1,
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeAiffReader{},
		sampleRate: 22050,
		channels:   1,
	}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_NotAiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "garbage",
			data: []byte("not an audio file at all"),
		},
		{
			name: "empty",
			data: nil,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiff) {
				t.Errorf("Decode() error = %v, want ErrNotAiff", err)
			}
		})
	}
}
