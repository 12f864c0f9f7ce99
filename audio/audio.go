// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a stream of interleaved PCM samples. The format decoders
// produce Sources; Resampler and MonoMixer wrap one Source in another,
// so a pipeline is built by plain composition.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo, ...).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1, 1]
	// and returns the number of values written. n == 0 with io.EOF
	// means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources held by the source.
	Close() error
}

// Decoder constructs a Source from an encoded input stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg", "aiff") to decoders,
// so callers can pick a decoder from a file extension.
type Registry struct {
	codecs map[string]Decoder
	mtx    sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
