// Package config loads the optional .sigil.toml project file described in
// SPEC_FULL.md's AMBIENT STACK section: diagnostics cap, color output, and
// watch-mode debounce, backed by BurntSushi/toml.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/th3oth3rjak3/Sigil/internal/diagnostics"
	"github.com/th3oth3rjak3/Sigil/internal/errors"
)

// FileName is the configuration file Load looks for.
const FileName = ".sigil.toml"

// Config controls behavior not specified by the language itself.
type Config struct {
	DiagnosticsCap  int           `toml:"diagnostics_cap"`
	Color           bool          `toml:"color"`
	WatchDebounce   time.Duration `toml:"-"`
	WatchDebounceMs int           `toml:"watch_debounce_ms"`
}

// Default returns the configuration used when no .sigil.toml is present.
func Default() Config {
	return Config{
		DiagnosticsCap:  diagnostics.DefaultCap,
		Color:           false,
		WatchDebounceMs: 250,
		WatchDebounce:   250 * time.Millisecond,
	}
}

// Load reads FileName from dir, falling back to Default() when the file
// does not exist. A malformed file is a CONFIG-category SigilError.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := dir + string(os.PathSeparator) + FileName

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.CategoryConfig, "CONFIG001", "failed to parse "+FileName, err)
	}

	if cfg.DiagnosticsCap <= 0 {
		cfg.DiagnosticsCap = diagnostics.DefaultCap
	}

	if cfg.WatchDebounceMs <= 0 {
		cfg.WatchDebounceMs = 250
	}

	cfg.WatchDebounce = time.Duration(cfg.WatchDebounceMs) * time.Millisecond

	return cfg, nil
}
