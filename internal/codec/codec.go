package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Library is the file-backed codec. It is stateless; the zero value is
// ready to use and safe for concurrent callers.
type Library struct{}

// Decode reads the audio file at path into a PCM buffer, dispatching on the
// file extension. All errors are *Failure values.
func (Library) Decode(path string) (*Buffer, error) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "wav":
		return decodeWAV(path)
	case "aif", "aiff":
		return decodeAIFF(path)
	case "mp3":
		return decodeMP3(path)
	case "flac":
		return decodeFLAC(path)
	case "ogg":
		return decodeVorbis(path)
	default:
		return nil, wrongFormat(fmt.Sprintf("no decoder for %q", filepath.Ext(path)))
	}
}

// Encode writes buf as a PCM WAV file at path. The buffer must already be
// normalized: a zero sample rate or bit depth is rejected rather than
// defaulted here.
func (Library) Encode(path string, buf *Buffer) error {
	if buf == nil {
		return wrongFormat("nil buffer")
	}
	if buf.Channels < 1 {
		return channelCount(fmt.Sprintf("%d channels", buf.Channels))
	}
	if len(buf.Data)%buf.Channels != 0 {
		return frameCount(fmt.Sprintf("%d samples do not divide into %d channels", len(buf.Data), buf.Channels))
	}
	switch buf.BitDepth {
	case 8, 16, 24, 32:
	default:
		return wrongFormat(fmt.Sprintf("unsupported bit depth %d", buf.BitDepth))
	}
	if buf.SampleRate < 1 {
		return wrongFormat(fmt.Sprintf("unsupported sample rate %d", buf.SampleRate))
	}

	var low, high int
	if buf.BitDepth == 8 {
		// WAV stores 8-bit audio unsigned.
		low, high = 0, 255
	} else {
		limit := 1 << (buf.BitDepth - 1)
		low, high = -limit, limit-1
	}
	for i, sample := range buf.Data {
		if sample < low || sample > high {
			return sampleRange(fmt.Sprintf("sample %d is %d, outside [%d, %d]", i, sample, low, high))
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return inaccessible(err)
	}

	enc := wav.NewEncoder(out, buf.SampleRate, buf.BitDepth, buf.Channels, 1)
	pcm := &audio.IntBuffer{
		Data:           buf.Data,
		Format:         &audio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		SourceBitDepth: buf.BitDepth,
	}
	if err := enc.Write(pcm); err != nil {
		_ = enc.Close()
		_ = out.Close()
		return inaccessible(err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return inaccessible(err)
	}
	if err := out.Close(); err != nil {
		return inaccessible(err)
	}
	return nil
}
