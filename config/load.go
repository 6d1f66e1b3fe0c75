package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load reads a TOML file over Default and validates the result
// Fields absent from the file keep their defaults; unknown keys are rejected
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes TOML data over Default and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()

	// Catalog and keys replace the defaults wholesale when present
	cfg.PowerUp.Catalog = nil
	cfg.Keys = nil

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Wrapf(ErrInvalid, "unknown key %q", undecoded[0].String())
	}

	if !md.IsDefined("powerup", "catalog") {
		cfg.PowerUp.Catalog = DefaultCatalog()
	}
	if !md.IsDefined("keys") {
		cfg.Keys = DefaultKeys()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
