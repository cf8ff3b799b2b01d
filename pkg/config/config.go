// Package config resolves the fixed project file paths the tool works
// on.
//
// The tool takes no required arguments: both the model file and the
// target HTML document are located relative to the project root, which
// is the nearest ancestor directory containing diagraft.toml or .git.
// An optional diagraft.toml overrides the default paths and marker
// strings.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/diagraft/diagraft/pkg/errors"
	"github.com/diagraft/diagraft/pkg/splice"
)

// FileName is the config file looked up at the project root.
const FileName = "diagraft.toml"

// Defaults applied when diagraft.toml is absent or partial.
const (
	DefaultModelPath   = "docs/data-model.yml"
	DefaultHTMLPath    = "docs/index.html"
	DefaultPreviewAddr = "localhost:8374"
)

// Config holds the resolved project settings. Paths are absolute after
// Load.
type Config struct {
	Model   string        `toml:"model"`
	HTML    string        `toml:"html"`
	Markers MarkersConfig `toml:"markers"`
	Preview PreviewConfig `toml:"preview"`
}

// MarkersConfig overrides the marker comment pair.
type MarkersConfig struct {
	Begin string `toml:"begin"`
	End   string `toml:"end"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no diagraft.toml exists.
func Default() Config {
	return Config{
		Model: DefaultModelPath,
		HTML:  DefaultHTMLPath,
		Markers: MarkersConfig{
			Begin: splice.DefaultBeginMarker,
			End:   splice.DefaultEndMarker,
		},
		Preview: PreviewConfig{Addr: DefaultPreviewAddr},
	}
}

// SpliceMarkers returns the configured marker pair.
func (c Config) SpliceMarkers() splice.Markers {
	return splice.Markers{Begin: c.Markers.Begin, End: c.Markers.End}
}

// Load reads diagraft.toml from root if present, fills unset fields with
// defaults, and resolves relative paths against root.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		cfg := Default()
		cfg.Model = resolve(root, cfg.Model)
		cfg.HTML = resolve(root, cfg.HTML)
		return cfg, nil
	}
	return LoadFile(path, root)
}

// LoadFile reads the config file at path, fills unset fields with
// defaults, and resolves relative paths against root.
func LoadFile(path, root string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	applyDefaults(&cfg)
	cfg.Model = resolve(root, cfg.Model)
	cfg.HTML = resolve(root, cfg.HTML)
	return cfg, nil
}

// applyDefaults fills fields the config file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.HTML == "" {
		cfg.HTML = def.HTML
	}
	if cfg.Markers.Begin == "" {
		cfg.Markers.Begin = def.Markers.Begin
	}
	if cfg.Markers.End == "" {
		cfg.Markers.End = def.Markers.End
	}
	if cfg.Preview.Addr == "" {
		cfg.Preview.Addr = def.Preview.Addr
	}
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// FindRoot walks up from start looking for the project root: the first
// directory containing diagraft.toml or .git. When neither is found the
// starting directory is returned unchanged.
func FindRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
