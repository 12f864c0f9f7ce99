// SPDX-License-Identifier: EPL-2.0

package pcm

import "time"

// Chunk partitions samples into consecutive non-overlapping windows of
// chunkDuration at the given sample rate. The final chunk may be
// shorter; empty input yields no chunks. A non-positive duration or
// rate also yields no chunks.
//
// The returned chunks are subslices of the input, not copies. Callers
// that hold on to chunks past the lifetime of the input buffer should
// copy them.
func Chunk(samples []int16, sampleRate int, chunkDuration time.Duration) [][]int16 {
	chunkSize := int(int64(sampleRate) * int64(chunkDuration) / int64(time.Second))
	if chunkSize <= 0 || len(samples) == 0 {
		return nil
	}

	chunks := make([][]int16, 0, (len(samples)+chunkSize-1)/chunkSize)
	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunks = append(chunks, samples[i:end])
	}

	return chunks
}
