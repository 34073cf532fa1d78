package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-particles/internal/logging"
	"github.com/iburimskiy/heart-particles/internal/music"
)

var (
	ErrUnsupportedTrack = errors.New("unsupported track type")
	ErrNoTrack          = errors.New("no track configured")
)

// Track is background music played through the system speaker.
type Track struct {
	Path   string
	Volume float64 // linear gain, 1 is unchanged
	Loop   bool

	log         logging.Logger
	speakerSR   beep.SampleRate
	streamer    beep.StreamSeekCloser
	currentFile *os.File
}

func NewTrack(path string, volume float64, loop bool, log logging.Logger) *Track {
	if log == nil {
		log = logging.Nop{}
	}
	return &Track{Path: path, Volume: volume, Loop: loop, log: log}
}

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(f.Name())) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedTrack, filepath.Ext(f.Name()))
	}
}

// Play decodes the track and starts it. A failed attempt leaves nothing
// open, so Play can simply be called again later.
func (t *Track) Play() error {
	if t.Path == "" {
		return ErrNoTrack
	}
	f, err := os.Open(t.Path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", t.Path, err)
	}

	if t.speakerSR != format.SampleRate {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		t.speakerSR = format.SampleRate
	}

	var s beep.Streamer = streamer
	if t.Loop {
		s = beep.Loop(-1, streamer)
	}
	vol := &effects.Volume{Streamer: s, Base: 2, Volume: music.GainExponent(t.Volume), Silent: t.Volume <= 0}

	t.Stop()
	t.streamer = streamer
	t.currentFile = f
	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		t.log.Debugf("track %s finished", t.Path)
	})))
	t.log.Infof("playing %s (%d Hz)", t.Path, format.SampleRate)
	return nil
}

// Stop halts playback and closes the open track, if any.
func (t *Track) Stop() {
	if t.speakerSR != 0 {
		speaker.Clear()
	}
	if t.streamer != nil {
		_ = t.streamer.Close()
		t.streamer = nil
	}
	if t.currentFile != nil {
		_ = t.currentFile.Close()
		t.currentFile = nil
	}
}

// PickTrack asks the user for an audio file. Cancelling returns "".
func PickTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

var _ music.Player = (*Track)(nil)
