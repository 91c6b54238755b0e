package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundHit
	SoundCollect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"`
}

// SoundConfig maps sound IDs to file paths relative to the audio root
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:    "audio/jump.wav",
			SoundHit:     "audio/hit.wav",
			SoundCollect: "audio/collect.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit: 1.2,
		},
	}
}
