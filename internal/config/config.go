package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mavwarf/appicon/internal/iconset"
	"github.com/Mavwarf/appicon/internal/render"
)

const (
	DefaultIconsetDir  = "build/AppIcon.iconset"
	DefaultOutputPath  = "Resources/AppIcon.icns"
	DefaultInterpreter = render.DefaultInterpreter
)

// Renderer backends.
const (
	RendererNative = "native"
	RendererSVG    = "svg"
	RendererSwift  = "swift"
)

// Packager backends. PackagerAuto picks iconutil when it is on PATH.
const (
	PackagerAuto     = "auto"
	PackagerIconutil = "iconutil"
	PackagerNative   = "native"
)

var (
	renderers = map[string]bool{RendererNative: true, RendererSVG: true, RendererSwift: true}
	packagers = map[string]bool{PackagerAuto: true, PackagerIconutil: true, PackagerNative: true}
)

// Config holds everything one generator run needs.
type Config struct {
	IconsetDir  string             `json:"iconset_dir"`
	OutputPath  string             `json:"output"`
	Renderer    string             `json:"renderer"`
	Packager    string             `json:"packager"`
	Interpreter string             `json:"interpreter"`
	ICOPath     string             `json:"ico,omitempty"`
	SVGPath     string             `json:"svg,omitempty"`
	Sizes       []iconset.SizeSpec `json:"sizes"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		IconsetDir:  DefaultIconsetDir,
		OutputPath:  DefaultOutputPath,
		Renderer:    RendererNative,
		Packager:    PackagerAuto,
		Interpreter: DefaultInterpreter,
		Sizes:       iconset.Default(),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults. A "sizes" array
// replaces the default table entirely.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.IconsetDir == "" {
		return fmt.Errorf("iconset_dir must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output must not be empty")
	}
	if !renderers[c.Renderer] {
		return fmt.Errorf("unknown renderer %q (want native, svg or swift)", c.Renderer)
	}
	if !packagers[c.Packager] {
		return fmt.Errorf("unknown packager %q (want auto, iconutil or native)", c.Packager)
	}
	if c.Renderer == RendererSwift && c.Interpreter == "" {
		return fmt.Errorf("swift renderer requires an interpreter path")
	}
	return iconset.Validate(c.Sizes)
}

// Load returns Default() when explicitPath is empty, otherwise the
// defaults overlaid with the file's contents. Validation is left to the
// caller so command-line overrides can be applied first.
func Load(explicitPath string) (Config, error) {
	if explicitPath == "" {
		return Default(), nil
	}
	return readConfig(explicitPath)
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
