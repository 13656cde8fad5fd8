package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// DefaultMaxPlayers caps how many instances of one clip play at once.
const DefaultMaxPlayers = 8

// ErrUnsupportedFormat is returned for file extensions EbitenLoader cannot
// decode.
var ErrUnsupportedFormat = errors.New("sound: unsupported audio format")

// Clip is decoded 16-bit stereo PCM played through an Ebitengine audio
// context. Each Play starts a new player.
type Clip struct {
	pcm        []byte
	maxPlayers int
	newPlayer  func(pcm []byte) player
	players    []player
	disposed   bool
}

// player is the part of *audio.Player a Clip drives.
type player interface {
	IsPlaying() bool
	SetVolume(volume float64)
	Play()
	Pause()
	Close() error
}

// NewClip wraps pcm, which must match ctx's sample rate.
func NewClip(ctx *audio.Context, pcm []byte, maxPlayers int) *Clip {
	return newClip(pcm, maxPlayers, func(pcm []byte) player {
		return ctx.NewPlayerFromBytes(pcm)
	})
}

func newClip(pcm []byte, maxPlayers int, newPlayer func([]byte) player) *Clip {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	return &Clip{pcm: pcm, maxPlayers: maxPlayers, newPlayer: newPlayer}
}

// Bytes returns the decoded PCM length in bytes.
func (c *Clip) Bytes() int {
	return len(c.pcm)
}

// Play starts a new instance at the given volume in [0, 1]. Finished
// players are recycled first; when MaxPlayers are still playing the call is
// dropped.
func (c *Clip) Play(volume float64) {
	if c.disposed {
		return
	}
	live := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			_ = p.Close()
		}
	}
	clear(c.players[len(live):])
	c.players = live
	if len(c.players) >= c.maxPlayers {
		return
	}
	p := c.newPlayer(c.pcm)
	p.SetVolume(volume)
	p.Play()
	c.players = append(c.players, p)
}

// Stop stops every playing instance.
func (c *Clip) Stop() {
	for _, p := range c.players {
		p.Pause()
	}
}

// Dispose closes every player and drops the PCM data. Further calls do
// nothing.
func (c *Clip) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true
	var errs []error
	for _, p := range c.players {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.players = nil
	c.pcm = nil
	return errors.Join(errs...)
}

// EbitenLoader decodes .wav, .ogg and .mp3 files at the context's sample
// rate.
type EbitenLoader struct {
	Context *audio.Context
	// MaxPlayers is passed to every Clip. 0 means DefaultMaxPlayers.
	MaxPlayers int
}

// Load implements Loader.
func (l EbitenLoader) Load(fsys fs.FS, name string) (Sound, error) {
	if l.Context == nil {
		return nil, errors.New("sound: EbitenLoader has no audio context")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	pcm, err := decodePCM(l.Context.SampleRate(), name, data)
	if err != nil {
		return nil, err
	}
	return NewClip(l.Context, pcm, l.MaxPlayers), nil
}

func decodePCM(sampleRate int, name string, data []byte) ([]byte, error) {
	src := bytes.NewReader(data)
	var (
		stream io.Reader
		err    error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, src)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}
