// SPDX-License-Identifier: EPL-2.0

package pcm

// Buffer accumulates audio chunks for gap-free playback scheduling.
// Chunks are held in insertion order together with a running sample
// count, so duration queries never walk the chunk list.
//
// Buffer is not internally synchronized. Callers with concurrent
// producers and consumers must provide their own mutual exclusion.
type Buffer struct {
	sampleRate int
	chunks     [][]int16
	samples    int
}

// NewBuffer creates an empty accumulation buffer for audio at the given
// sample rate. sampleRate must be positive.
func NewBuffer(sampleRate int) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
	}
}

// Add appends a chunk to the buffer. The chunk is copied, so the caller
// may reuse its slice afterwards.
func (b *Buffer) Add(chunk []int16) {
	held := make([]int16, len(chunk))
	copy(held, chunk)

	b.chunks = append(b.chunks, held)
	b.samples += len(held)
}

// Duration returns the total duration of buffered audio in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.samples) / float64(b.sampleRate)
}

// Flush concatenates all held chunks into a single contiguous buffer in
// insertion order. It returns an empty slice when nothing is held and
// does not modify the buffer; call Clear to drop the held chunks.
func (b *Buffer) Flush() []int16 {
	out := make([]int16, 0, b.samples)
	for _, chunk := range b.chunks {
		out = append(out, chunk...)
	}
	return out
}

// Clear drops all held chunks and resets the sample count to zero.
func (b *Buffer) Clear() {
	b.chunks = nil
	b.samples = 0
}

// Empty reports whether the buffer holds no chunks.
func (b *Buffer) Empty() bool {
	return len(b.chunks) == 0
}

// Len returns the total number of held samples.
func (b *Buffer) Len() int {
	return b.samples
}

// SampleRate returns the rate the buffer was created with.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}
