package codec

import (
	"fmt"
	"os"

	"github.com/jfreymuth/oggvorbis"
)

// decodeVorbis converts the decoder's float32 output to 16-bit PCM, which is
// the closest integer representation the WAV target supports.
func decodeVorbis(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inaccessible(err)
	}
	defer f.Close()

	samples, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, corrupt(err)
	}
	if format.Channels < 1 {
		return nil, channelCount(fmt.Sprintf("%d channels", format.Channels))
	}

	data := make([]int, len(samples))
	for i, sample := range samples {
		scaled := int(sample * 32767)
		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}
		data[i] = scaled
	}

	return &Buffer{
		Data:       data,
		Channels:   format.Channels,
		SampleRate: format.SampleRate,
		BitDepth:   16,
		Format:     FormatS16,
	}, nil
}
