package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/etris.yaml
var defaultEtrisYAML []byte

// DefaultEtrisConfig returns the built-in configuration used when no YAML
// file can be read.
func DefaultEtrisConfig() EtrisConfig {
	return EtrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
			Border: 1,
		},
		Display: DisplayConfig{
			FPS:         60,
			Glyph:       "█",
			ShowPreview: true,
		},
		GUI: GUIConfig{
			BlockSize: 24,
			HUDWidth:  160,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Storage: StorageConfig{
			DBPath: "~/.etris/scores.db",
		},
	}
}
