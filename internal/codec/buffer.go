package codec

// SampleFormat tags how Buffer.Data samples are to be interpreted when
// encoding. FormatUnset means the decoder could not determine the source
// format; callers decide what default to apply.
type SampleFormat int

const (
	FormatUnset SampleFormat = iota
	FormatS16
	FormatS24
	FormatS32
)

// Buffer holds decoded PCM audio. Data is interleaved by channel. A
// SampleRate or BitDepth of zero is a sentinel for "the source did not say",
// not silence; see the normalization performed by the conversion task.
type Buffer struct {
	Data       []int
	Channels   int
	SampleRate int
	BitDepth   int
	Format     SampleFormat
}

// Frames returns the number of sample frames in the buffer.
func (b *Buffer) Frames() int {
	if b == nil || b.Channels < 1 {
		return 0
	}
	return len(b.Data) / b.Channels
}
