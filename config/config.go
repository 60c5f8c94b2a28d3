package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// GameConfig tunes the session rules. Durations are stored as
// milliseconds; zero values mean "use the built-in default" so a partial
// file stays valid.
type GameConfig struct {
	MaxLevel       int `json:"maxLevel,omitempty"`
	PlaybackHoldMs int `json:"playbackHoldMs,omitempty"`
	PlaybackGapMs  int `json:"playbackGapMs,omitempty"`
	OutcomeDwellMs int `json:"outcomeDwellMs,omitempty"`
	PollIntervalMs int `json:"pollIntervalMs,omitempty"`
}

func (g GameConfig) PlaybackHold() time.Duration {
	return time.Duration(g.PlaybackHoldMs) * time.Millisecond
}

func (g GameConfig) PlaybackGap() time.Duration {
	return time.Duration(g.PlaybackGapMs) * time.Millisecond
}

func (g GameConfig) OutcomeDwell() time.Duration {
	return time.Duration(g.OutcomeDwellMs) * time.Millisecond
}

func (g GameConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalMs) * time.Millisecond
}

// SoundConfig selects the audio backend
type SoundConfig struct {
	Backend  string `json:"backend,omitempty"` // synth, midi or off
	MIDIPort string `json:"midiPort,omitempty"`
}

// SimConfig stores terminal simulator preferences
type SimConfig struct {
	Theme     string `json:"theme,omitempty"`     // built-in name or path to a .gpl file
	NoiseAmp  int    `json:"noiseAmp,omitempty"`  // jitter added to simulated samples
	KeyHoldMs int    `json:"keyHoldMs,omitempty"` // how long a tap holds the pin down
}

func (s SimConfig) KeyHold() time.Duration {
	return time.Duration(s.KeyHoldMs) * time.Millisecond
}

// ShieldConfig points at the hardware description
type ShieldConfig struct {
	Profile string `json:"profile,omitempty"` // path to the TOML hardware profile
}

// Config is the main configuration structure
type Config struct {
	Game   GameConfig   `json:"game,omitempty"`
	Sound  SoundConfig  `json:"sound,omitempty"`
	Sim    SimConfig    `json:"sim,omitempty"`
	Shield ShieldConfig `json:"shield,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			MaxLevel:       10,
			PlaybackHoldMs: 600,
			PlaybackGapMs:  250,
			OutcomeDwellMs: 3000,
			PollIntervalMs: 10,
		},
		Sound: SoundConfig{
			Backend: "synth",
		},
		Sim: SimConfig{
			Theme:     "classic",
			NoiseAmp:  8,
			KeyHoldMs: 180,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "simonsays"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile reads a specific config file. Unlike Load it fails when the
// file is missing.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
