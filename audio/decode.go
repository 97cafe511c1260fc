package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/rocket-lander/constants"
)

// DecodeFile fully decodes a WAV or MP3 file into memory at the given sample rate
func DecodeFile(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio %s: %w", path, err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		// mp3 decoder takes ownership of f
		stream, format, err = mp3.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode audio %s: %w", path, err)
	}
	defer stream.Close()
	defer f.Close()

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(constants.ResampleQuality, format.SampleRate, rate, stream)
	}

	out := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream audio %s: %w", path, err)
	}
	return buf, nil
}

// Render drains a finite streamer into a buffer
func Render(s beep.Streamer, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
