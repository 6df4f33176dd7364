package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

func decodeFLAC(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inaccessible(err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, corrupt(err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if channels < 1 {
		return nil, channelCount(fmt.Sprintf("%d channels", channels))
	}

	data := make([]int, 0, int(info.NSamples)*channels)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, corrupt(err)
		}
		if len(frame.Subframes) != channels {
			return nil, channelCount(fmt.Sprintf("frame has %d subframes, stream has %d channels", len(frame.Subframes), channels))
		}
		frames := len(frame.Subframes[0].Samples)
		for _, sub := range frame.Subframes {
			if len(sub.Samples) != frames {
				return nil, frameCount(fmt.Sprintf("subframe sample counts differ: %d vs %d", len(sub.Samples), frames))
			}
		}
		for i := 0; i < frames; i++ {
			for _, sub := range frame.Subframes {
				data = append(data, int(sub.Samples[i]))
			}
		}
	}

	return &Buffer{
		Data:       data,
		Channels:   channels,
		SampleRate: int(info.SampleRate),
		BitDepth:   int(info.BitsPerSample),
		Format:     formatForDepth(int(info.BitsPerSample)),
	}, nil
}
