package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	cfg "github.com/automoto/fruitrun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed audio
var AudioFS embed.FS

// SoundBank plays the configured sound effects. Cues are decoded once at
// load; cues whose file is missing or undecodable are skipped silently.
type SoundBank struct {
	context *audio.Context
	sfx     map[cfg.SoundID][]byte
}

// NewSoundBank decodes every path in cfg.Sound.SFXPaths from fsys.
func NewSoundBank(ctx *audio.Context, fsys fs.FS) *SoundBank {
	b := &SoundBank{
		context: ctx,
		sfx:     make(map[cfg.SoundID][]byte, len(cfg.Sound.SFXPaths)),
	}
	for id, p := range cfg.Sound.SFXPaths {
		decoded, err := decodeSFX(fsys, p, ctx.SampleRate())
		if err != nil {
			log.Printf("Warning: sound %s unavailable: %v", p, err)
			continue
		}
		b.sfx[id] = decoded
	}
	return b
}

// Play starts a new player for sound. Overlapping cues play concurrently.
func (b *SoundBank) Play(sound cfg.SoundID) {
	decoded, ok := b.sfx[sound]
	if !ok {
		return
	}

	player := b.context.NewPlayerFromBytes(decoded)
	volume := cfg.Audio.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[sound]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// decodeSFX reads an ogg or wav file and returns its PCM bytes at sampleRate.
func decodeSFX(fsys fs.FS, p string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}
