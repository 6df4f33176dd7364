package codec

import (
	"os"

	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
)

func decodeWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inaccessible(err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, corrupt(dec.Err())
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, corrupt(err)
	}

	return &Buffer{
		Data:       pcm.Data,
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Format:     formatForDepth(int(dec.BitDepth)),
	}, nil
}

func decodeAIFF(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inaccessible(err)
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, corrupt(dec.Err())
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, corrupt(err)
	}

	return &Buffer{
		Data:       pcm.Data,
		Channels:   int(dec.NumChans),
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Format:     formatForDepth(int(dec.BitDepth)),
	}, nil
}

func formatForDepth(bitDepth int) SampleFormat {
	switch bitDepth {
	case 16:
		return FormatS16
	case 24:
		return FormatS24
	case 32:
		return FormatS32
	default:
		return FormatUnset
	}
}
