package animico

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named timing: a duration and an easing curve. Presets keep
// animation feel in data files instead of scattered literals.
type Preset struct {
	// Duration is in seconds.
	Duration float64 `yaml:"duration"`

	// EaseName is resolved with EaseByName. Empty means linear.
	EaseName string `yaml:"ease"`
}

// Validate checks the duration and the curve name.
func (p Preset) Validate() error {
	if !(p.Duration > 0) || math.IsInf(p.Duration, 1) {
		return fmt.Errorf("%w: duration must be positive and finite, got %v", ErrInvalidArgument, p.Duration)
	}
	if p.EaseName == "" {
		return nil
	}
	if _, ok := EaseByName(p.EaseName); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEase, p.EaseName)
	}
	return nil
}

// Ease returns the preset's curve, or nil (linear) if none is named or the
// name is unknown. Validate reports unknown names.
func (p Preset) Ease() EaseFunc {
	if p.EaseName == "" {
		return nil
	}
	fn, _ := EaseByName(p.EaseName)
	return fn
}

// presetFile is the top-level YAML structure.
type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// PresetBook is a validated set of named presets.
type PresetBook struct {
	presets map[string]Preset
}

// LoadPresets parses a YAML presets document:
//
//	presets:
//	  fadeIn:  {duration: 0.25, ease: easeOut}
//	  popIn:   {duration: 0.4, ease: outBack}
func LoadPresets(data []byte) (*PresetBook, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if f.Presets == nil {
		f.Presets = map[string]Preset{}
	}
	return &PresetBook{presets: f.Presets}, nil
}

// LoadPresetsFile reads and parses a presets file.
func LoadPresetsFile(path string) (*PresetBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return LoadPresets(data)
}

// Get returns the named preset.
func (b *PresetBook) Get(name string) (Preset, bool) {
	p, ok := b.presets[name]
	return p, ok
}

// Names returns the preset names in sorted order.
func (b *PresetBook) Names() []string {
	names := make([]string, 0, len(b.presets))
	for name := range b.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
