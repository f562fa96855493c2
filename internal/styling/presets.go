// Package styling carries the utility-CSS preset configuration consumed by the frontend build.
//
// It is declarative data only: an ordered list of parameterless presets.
package styling

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Preset identifiers understood by the frontend build.
const (
	PresetWind4       = "presetWind4"
	PresetIcons       = "presetIcons"
	PresetAttributify = "presetAttributify"
)

const presetsKey = "presets"

// ErrUnknownPreset is returned when a configuration names a preset that is not supported.
var ErrUnknownPreset = errors.New("unknown styling preset")

var knownPresets = map[string]struct{}{
	PresetWind4:       {},
	PresetIcons:       {},
	PresetAttributify: {},
}

// Preset activates one named preset. Presets take no parameters.
type Preset struct {
	Name string `json:"name" mapstructure:"name"`
}

// Config is the styling build configuration.
type Config struct {
	Presets []Preset `json:"presets"`
}

// Default returns the three presets in activation order.
func Default() *Config {
	return &Config{Presets: []Preset{
		{Name: PresetWind4},
		{Name: PresetIcons},
		{Name: PresetAttributify},
	}}
}

// Load reads the configuration from path using viper. The file format follows the extension
// (yaml, json, toml). An empty path, or a file without a presets key, yields Default.
//
// The presets key accepts either a list of names or a list of {name: ...} records.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	vpr := viper.New()
	vpr.SetConfigFile(path)
	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read styling config: %w", err)
	}

	if !vpr.IsSet(presetsKey) {
		return Default(), nil
	}

	names, err := presetNames(vpr.Get(presetsKey))
	if err != nil {
		return nil, err
	}

	cfg := &Config{Presets: make([]Preset, 0, len(names))}
	for _, name := range names {
		if _, ok := knownPresets[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
		cfg.Presets = append(cfg.Presets, Preset{Name: name})
	}

	return cfg, nil
}

func presetNames(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("presets must be a list, got %T", raw)
	}

	names := make([]string, 0, len(items))
	for idx, item := range items {
		switch val := item.(type) {
		case string:
			names = append(names, val)
		case map[string]any:
			name, isString := val["name"].(string)
			if !isString {
				return nil, fmt.Errorf("preset #%d has no name", idx)
			}
			names = append(names, name)
		default:
			return nil, fmt.Errorf("preset #%d has unsupported type %T", idx, item)
		}
	}

	return names, nil
}

// Names returns the preset identifiers in activation order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	return names
}

// MarshalJSON renders the configuration as {"presets":[{"name":...},...]}.
func (c *Config) MarshalJSON() ([]byte, error) {
	type plain Config
	presets := c.Presets
	if presets == nil {
		presets = []Preset{}
	}
	return json.Marshal(plain{Presets: presets})
}
