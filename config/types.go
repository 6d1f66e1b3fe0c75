package config

import (
	"time"

	"github.com/pkg/errors"
)

// Duration is a time.Duration read from TOML strings such as "500ms" or "10s"
type Duration time.Duration

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "duration %q", text)
	}
	*d = Duration(parsed)
	return nil
}

// OverlapPolicy decides what activating a power-up does while another is active
type OverlapPolicy string

const (
	// OverlapRevert reverses the active effect before applying the new one
	OverlapRevert OverlapPolicy = "revert"
	// OverlapReplace overwrites the slot; the old multiplier is never undone
	OverlapReplace OverlapPolicy = "replace"
)

// Valid reports whether p is a known policy
func (p OverlapPolicy) Valid() bool {
	return p == OverlapRevert || p == OverlapReplace
}
