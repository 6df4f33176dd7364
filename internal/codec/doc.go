// Package codec decodes audio files into in-memory PCM buffers and encodes
// buffers back out as WAV.
//
// Decoding dispatches on the file extension: wav and aiff go through
// go-audio, mp3 through hajimehoshi/go-mp3, flac through mewkiz/flac and ogg
// through jfreymuth/oggvorbis. Extensions without a pure-Go decoder (aac,
// m4a, wma) produce a wrong-format failure so the batch can report them
// without special casing.
//
// Every failure surfaces as a *Failure carrying one of six kinds; callers
// classify with AsFailure or errors.As and never parse message text.
package codec
