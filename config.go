package spring

import (
	"encoding/json"
	"fmt"
	"log"
)

// Config holds the dynamics of a spring. It is shared by every channel.
type Config struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
}

// DefaultConfig returns the stiffness and damping used by the constructors.
func DefaultConfig() Config {
	return Config{Stiffness: DefaultStiffness, Damping: DefaultDamping}
}

// CriticalConfig returns a critically damped config for the given stiffness.
func CriticalConfig(stiffness float64) Config {
	return Config{Stiffness: stiffness, Damping: CriticalDamping(stiffness)}
}

// ConfigFromRatio returns a config whose damping is ratio times critical.
func ConfigFromRatio(stiffness, ratio float64) Config {
	return Config{Stiffness: stiffness, Damping: CriticalDamping(stiffness) * ratio}
}

// Apply copies the stiffness and damping onto s. State is left untouched.
func (c Config) Apply(s *Spring) {
	s.Stiffness = c.Stiffness
	s.Damping = c.Damping
}

// Character classifies the config's damping.
func (c Config) Character() DampingCharacter {
	return Character(c.Stiffness, c.Damping)
}

// Presets maps names to spring configs, typically loaded from a JSON file
// shipped with the game's assets.
type Presets map[string]Config

// presetFile is the top-level JSON structure for a presets document.
type presetFile struct {
	Presets map[string]Config `json:"presets"`
}

// LoadPresets parses a JSON presets document:
//
//	{"presets": {"snappy": {"stiffness": 300, "damping": 20}}}
func LoadPresets(jsonData []byte) (Presets, error) {
	var f presetFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("spring: parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("spring: parse presets: no presets")
	}
	return Presets(f.Presets), nil
}

// Get returns the named preset.
func (p Presets) Get(name string) (Config, bool) {
	c, ok := p[name]
	return c, ok
}

// Lookup returns the named preset, or DefaultConfig if it doesn't exist.
// Misses are logged in debug mode.
func (p Presets) Lookup(name string) Config {
	if c, ok := p[name]; ok {
		return c
	}
	if globalDebug {
		log.Printf("spring: preset %q not found, using default", name)
	}
	return DefaultConfig()
}
