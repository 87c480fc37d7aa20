package timer

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// decodeSound opens the sound file and returns a stream for it. The caller
// must close the stream.
func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errPlaySound.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errPlaySound.Fmt(path).Wrap(err)
	}

	return stream, format, nil
}

// playSound plays the sound file to the end.
func playSound(path string) error {
	stream, format, err := decodeSound(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Second/time.Duration(bufferSize)),
	)
	if err != nil {
		return errPlaySound.Fmt(path).Wrap(err)
	}

	defer speaker.Close()

	done := make(chan struct{})

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
