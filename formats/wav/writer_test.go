// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWritePCM16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200}
	var buf bytes.Buffer

	if err := WritePCM16(&buf, 8000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(samples)*2 {
		t.Fatalf("wrote %d bytes, want %d", len(data), 44+len(samples)*2)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		t.Error("missing fmt/data chunk markers")
	}

	if format := binary.LittleEndian.Uint16(data[20:22]); format != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", format)
	}
	if channels := binary.LittleEndian.Uint16(data[22:24]); channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if bits := binary.LittleEndian.Uint16(data[34:36]); bits != 16 {
		t.Errorf("bits per sample = %d, want 16", bits)
	}
	if dataSize := binary.LittleEndian.Uint32(data[40:44]); dataSize != uint32(len(samples)*2) {
		t.Errorf("data size = %d, want %d", dataSize, len(samples)*2)
	}
}

func TestWritePCM16_SampleBytes(t *testing.T) {
	t.Parallel()

	samples := []int16{0x0102, -1}
	var buf bytes.Buffer

	if err := WritePCM16(&buf, 16000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	want := []byte{0x02, 0x01, 0xff, 0xff} // little-endian
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %#x, want %#x", i, data[i], want[i])
		}
	}
}

func TestWritePCM16_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 24000, nil); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	if buf.Len() != 44 {
		t.Errorf("wrote %d bytes, want 44 (header only)", buf.Len())
	}
}

func TestWritePCM16_LargeBuffer(t *testing.T) {
	t.Parallel()

	// Spans multiple write chunks
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WritePCM16(&buf, 16000, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	data := buf.Bytes()[44:]
	if len(data) != len(samples)*2 {
		t.Fatalf("data section is %d bytes, want %d", len(data), len(samples)*2)
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[i*2:]))
		if got != s {
			t.Fatalf("sample %d = %d, want %d", i, got, s)
		}
	}
}
