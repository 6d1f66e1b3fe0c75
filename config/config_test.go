package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1200.0, cfg.Arena.Width)
	assert.Equal(t, 500*time.Millisecond, cfg.Spawn.Interval.Std())
	assert.Equal(t, []float64{-15, 0, 15}, cfg.Weapon.SpreadAngles)
	assert.Len(t, cfg.PowerUp.Catalog, 7)
	assert.Equal(t, OverlapRevert, cfg.PowerUp.OverlapPolicy)
	assert.Equal(t, core.RGBDarkRed, cfg.Adversaries.Tank.Color)
}

func TestAdversaryStatsByType(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.Adversaries.Stats(component.AdversaryTank).Health)
	assert.Equal(t, 3.0, cfg.Adversaries.Stats(component.AdversaryFast).Speed)
	assert.Equal(t, 12.0, cfg.Adversaries.Stats(component.AdversaryZigZag).Radius)
	assert.Equal(t, cfg.Adversaries.Basic, cfg.Adversaries.Stats(component.AdversaryTypeCount))
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	data := []byte(`
seed = 7

[spawn]
interval = "250ms"

[adversaries.tank]
health = 9
color = "#102030"

[powerup]
overlap_policy = "replace"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Spawn.Interval.Std())
	assert.Equal(t, 3, cfg.Spawn.BatchSize)
	assert.Equal(t, 9, cfg.Adversaries.Tank.Health)
	assert.Equal(t, 25.0, cfg.Adversaries.Tank.Radius)
	assert.Equal(t, core.RGB{R: 0x10, G: 0x20, B: 0x30}, cfg.Adversaries.Tank.Color)
	assert.Equal(t, OverlapReplace, cfg.PowerUp.OverlapPolicy)
	assert.Len(t, cfg.PowerUp.Catalog, 7)
	assert.Equal(t, "move_up", cfg.Keys["w"])
}

func TestParseCatalogReplacesDefault(t *testing.T) {
	data := []byte(`
[powerup]
offer_count = 2

[[powerup.catalog]]
name = "fireRate"
label = "Rapid"
multiplier = 2.0

[[powerup.catalog]]
name = "spreadShot"
label = "Spread"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, cfg.PowerUp.Catalog, 2)
	assert.Equal(t, 2, cfg.PowerUp.OfferCount)
	assert.Equal(t, component.PowerUpFireRate, cfg.PowerUp.Catalog[0].Kind)
	assert.Equal(t, 2.0, cfg.PowerUp.Catalog[0].Multiplier)
	assert.Equal(t, component.PowerUpSpreadShot, cfg.PowerUp.Catalog[1].Kind)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "[arena]\ndepth = 3\n"},
		{"bad policy", "[powerup]\noverlap_policy = \"stack\"\n"},
		{"zero milestone", "[powerup]\nkill_milestone = 0\n"},
		{"negative interval", "[spawn]\ninterval = \"-5ms\"\n"},
		{"zero offers", "[powerup]\noffer_count = 0\n"},
		{"catalog shorter than offers", "[[powerup.catalog]]\nname = \"spreadShot\"\n[[powerup.catalog]]\nname = \"piercingShot\"\n"},
		{"offers exceed default catalog", "[powerup]\noffer_count = 8\n"},
		{"duplicate power-up", "[powerup]\noffer_count = 1\n[[powerup.catalog]]\nname = \"spreadShot\"\n[[powerup.catalog]]\nname = \"spreadShot\"\n"},
		{"multiplier missing", "[powerup]\noffer_count = 1\n[[powerup.catalog]]\nname = \"bulletSize\"\n"},
		{"dead adversary", "[adversaries.fast]\nhealth = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, errors.Cause(err), ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownPowerUp(t *testing.T) {
	_, err := Parse([]byte("[[powerup.catalog]]\nname = \"laser\"\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte("[arena]\nwidth = 800.0\nheight = 600.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Arena.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Weapon.SpreadAngles[0] = 99
	b.PowerUp.Catalog[0].Multiplier = 5
	b.Keys["x"] = "quit"

	assert.Equal(t, -15.0, a.Weapon.SpreadAngles[0])
	assert.Equal(t, 1.2, a.PowerUp.Catalog[0].Multiplier)
	_, ok := a.Keys["x"]
	assert.False(t, ok)
}
