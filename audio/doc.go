// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of the conversion pipeline:
// a Source interface for interleaved float32 PCM streams, a cubic
// streaming Resampler, a MonoMixer that averages channels down to one,
// and a Registry for looking up format decoders.
//
// # Building a Pipeline
//
// Wrap a decoded source in a Resampler and a MonoMixer and read from
// the outermost stage:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pipeline := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := pipeline.ReadSamples(buf)
//	    // consume buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// The streaming Resampler uses Catmull-Rom cubic interpolation with a
// simple low-pass filter when downsampling. It is better suited to
// offline file conversion than the stateless linear resampler in the
// pcm package, which exists for the low-latency capture path.
package audio
