// Package config provides YAML-based configuration loading for etris.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-etris/internal/etris"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EtrisConfig contains all configuration for the etris front ends.
type EtrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	GUI     GUIConfig     `yaml:"gui"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig is the playfield handed to the engine.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Border int `yaml:"border"`
}

// DisplayConfig controls the terminal renderer.
type DisplayConfig struct {
	FPS         int    `yaml:"fps"`
	Glyph       string `yaml:"glyph"` // drawn twice per block
	ShowPreview bool   `yaml:"show_preview"`
}

// GUIConfig controls the graphical front end.
type GUIConfig struct {
	BlockSize int `yaml:"block_size"` // pixels per grid cell
	HUDWidth  int `yaml:"hud_width"`  // pixels right of the field
}

// ServerConfig controls `etris serve`.
type ServerConfig struct {
	Address        string        `yaml:"address"`
	HostKey        string        `yaml:"host_key"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MetricsAddress string        `yaml:"metrics_address"` // empty disables /metrics
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks the values the engine and front ends would reject.
func (c EtrisConfig) Validate() error {
	b := c.Board
	if b.Width < etris.MinWidth || b.Height < etris.MinHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, b.Width, b.Height, etris.MinWidth, etris.MinHeight)
	}
	if b.Border < 0 {
		return fmt.Errorf("%w: board border %d is negative", ErrInvalidConfig, b.Border)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display fps %d must be positive", ErrInvalidConfig, c.Display.FPS)
	}
	if len([]rune(c.Display.Glyph)) != 1 {
		return fmt.Errorf("%w: display glyph %q must be a single character", ErrInvalidConfig, c.Display.Glyph)
	}
	if c.GUI.BlockSize <= 0 || c.GUI.HUDWidth < 0 {
		return fmt.Errorf("%w: gui block size %d, hud width %d", ErrInvalidConfig, c.GUI.BlockSize, c.GUI.HUDWidth)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidConfig)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server idle timeout %s is negative", ErrInvalidConfig, c.Server.IdleTimeout)
	}
	return nil
}
