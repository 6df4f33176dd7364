package codec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeDecodeWAVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	in := &Buffer{
		Data:       []int{0, 1000, -1000, 32767, -32768, 42},
		Channels:   2,
		SampleRate: 44100,
		BitDepth:   16,
		Format:     FormatS16,
	}
	if err := (Library{}).Encode(path, in); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := (Library{}).Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.SampleRate != 44100 {
		t.Errorf("sample rate: expected 44100, got %d", out.SampleRate)
	}
	if out.BitDepth != 16 {
		t.Errorf("bit depth: expected 16, got %d", out.BitDepth)
	}
	if out.Channels != 2 {
		t.Errorf("channels: expected 2, got %d", out.Channels)
	}
	if len(out.Data) != len(in.Data) {
		t.Fatalf("samples: expected %d, got %d", len(in.Data), len(out.Data))
	}
	for i := range in.Data {
		if out.Data[i] != in.Data[i] {
			t.Fatalf("sample %d: expected %d, got %d", i, in.Data[i], out.Data[i])
		}
	}
	if out.Frames() != 3 {
		t.Errorf("frames: expected 3, got %d", out.Frames())
	}
}

func TestDecodeMissingFileIsInaccessible(t *testing.T) {
	_, err := (Library{}).Decode(filepath.Join(t.TempDir(), "missing.wav"))
	assertKind(t, err, KindInaccessible)
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"a.aac", "b.m4a", "c.wma"} {
		_, err := (Library{}).Decode(filepath.Join(t.TempDir(), name))
		assertKind(t, err, KindWrongFormat)
	}
}

func TestDecodeCorruptWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.wav")
	writeGarbage(t, path)

	_, err := (Library{}).Decode(path)
	assertKind(t, err, KindCorrupt)
}

func TestEncodeRejectsBadBuffers(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.wav")

	cases := []struct {
		name string
		buf  *Buffer
		kind Kind
	}{
		{
			name: "zero channels",
			buf:  &Buffer{Data: []int{1}, Channels: 0, SampleRate: 44100, BitDepth: 16},
			kind: KindChannelCount,
		},
		{
			name: "ragged frames",
			buf:  &Buffer{Data: []int{1, 2, 3}, Channels: 2, SampleRate: 44100, BitDepth: 16},
			kind: KindFrameCount,
		},
		{
			name: "sample out of range",
			buf:  &Buffer{Data: []int{40000, 0}, Channels: 1, SampleRate: 44100, BitDepth: 16},
			kind: KindSampleRange,
		},
		{
			name: "odd bit depth",
			buf:  &Buffer{Data: []int{1}, Channels: 1, SampleRate: 44100, BitDepth: 12},
			kind: KindWrongFormat,
		},
		{
			name: "zero sample rate",
			buf:  &Buffer{Data: []int{1}, Channels: 1, SampleRate: 0, BitDepth: 16},
			kind: KindWrongFormat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := (Library{}).Encode(target, tc.buf)
			assertKind(t, err, tc.kind)
		})
	}
}

func TestEncodeIntoMissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "no", "such", "dir", "out.wav")
	err := (Library{}).Encode(target, &Buffer{Data: []int{1, 2}, Channels: 1, SampleRate: 44100, BitDepth: 16})
	assertKind(t, err, KindInaccessible)
}

func TestFailureDescribe(t *testing.T) {
	plain := &Failure{Kind: KindCorrupt}
	if got := plain.Describe(); got != "the file was corrupt" {
		t.Errorf("unexpected phrase: %q", got)
	}

	detailed := &Failure{Kind: KindInaccessible, Detail: "permission denied"}
	if got := detailed.Describe(); got != "the file was inaccessible (permission denied)" {
		t.Errorf("unexpected phrase: %q", got)
	}

	wrapped := &Failure{Kind: KindSampleRange, Err: errors.New("sample 3 is 70000")}
	if got := wrapped.Describe(); got != "a sample value was out of range (sample 3 is 70000)" {
		t.Errorf("unexpected phrase: %q", got)
	}
}

func TestKindLabels(t *testing.T) {
	labels := map[Kind]string{
		KindCorrupt:      "corrupt",
		KindInaccessible: "inaccessible",
		KindChannelCount: "channel_count",
		KindFrameCount:   "frame_count",
		KindSampleRange:  "sample_range",
		KindWrongFormat:  "wrong_format",
	}
	for kind, want := range labels {
		if kind.String() != want {
			t.Errorf("kind %d: expected %q, got %q", kind, want, kind.String())
		}
	}
}

func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	failure, ok := AsFailure(err)
	if !ok {
		t.Fatalf("expected *Failure, got %T: %v", err, err)
	}
	if failure.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, failure.Kind, err)
	}
}

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i * 7)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
