package codec

import (
	"encoding/binary"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 reads the whole stream. go-mp3 always yields 16-bit stereo
// little-endian PCM at the source sample rate.
func decodeMP3(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inaccessible(err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, corrupt(err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, corrupt(err)
	}
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}

	data := make([]int, len(raw)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
	}

	return &Buffer{
		Data:       data,
		Channels:   2,
		SampleRate: dec.SampleRate(),
		BitDepth:   16,
		Format:     FormatS16,
	}, nil
}
