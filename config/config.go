// Package config holds the immutable simulation configuration
// Defaults come from package parameter; a TOML file may override any field
package config

import (
	"slices"
	"time"

	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/core"
	"github.com/lixenwraith/vi-arena/parameter"
)

// Config is passed by value to the simulation at construction
// Slices are cloned on Clone so a running simulation never observes host edits
type Config struct {
	Arena       ArenaConfig      `toml:"arena"`
	Actor       ActorConfig      `toml:"actor"`
	Adversaries AdversaryTable   `toml:"adversaries"`
	Movement    MovementConfig   `toml:"movement"`
	Spawn       SpawnConfig      `toml:"spawn"`
	Weapon      WeaponConfig     `toml:"weapon"`
	Scoring     ScoringConfig    `toml:"scoring"`
	PowerUp     PowerUpConfig    `toml:"powerup"`
	Difficulty  DifficultyConfig `toml:"difficulty"`
	Timing      TimingConfig     `toml:"timing"`

	// Keys maps key names to action names for the terminal host
	Keys map[string]string `toml:"keys"`

	// Seed drives spawn and power-up draws; zero means seed from wall time
	Seed uint64 `toml:"seed"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ActorConfig struct {
	Radius             float64 `toml:"radius"`
	Speed              float64 `toml:"speed"`
	MaxHealth          float64 `toml:"max_health"`
	ShootInterval      float64 `toml:"shoot_interval"`
	InvincibilityTicks int     `toml:"invincibility_ticks"`
	ContactDamage      float64 `toml:"contact_damage"`
	ProjectileRadius   float64 `toml:"projectile_radius"`
	ProjectileSpeed    float64 `toml:"projectile_speed"`
}

// AdversaryStats are the spawn-time stats of one variant
type AdversaryStats struct {
	Radius float64  `toml:"radius"`
	Speed  float64  `toml:"speed"`
	Health int      `toml:"health"`
	Color  core.RGB `toml:"color"`
}

// AdversaryTable holds stats for every variant
type AdversaryTable struct {
	Basic  AdversaryStats `toml:"basic"`
	Fast   AdversaryStats `toml:"fast"`
	Tank   AdversaryStats `toml:"tank"`
	ZigZag AdversaryStats `toml:"zigzag"`
}

// Stats returns the stats for t; unknown variants get Basic
func (a *AdversaryTable) Stats(t component.AdversaryType) AdversaryStats {
	switch t {
	case component.AdversaryFast:
		return a.Fast
	case component.AdversaryTank:
		return a.Tank
	case component.AdversaryZigZag:
		return a.ZigZag
	default:
		return a.Basic
	}
}

type MovementConfig struct {
	TankMoveEvery   int     `toml:"tank_move_every"`
	ZigZagAmplitude float64 `toml:"zigzag_amplitude"`
	ZigZagFrequency float64 `toml:"zigzag_frequency"`
}

type SpawnConfig struct {
	Interval       Duration `toml:"interval"`
	BatchSize      int      `toml:"batch_size"`
	MaxAdversaries int      `toml:"max_adversaries"`
}

type WeaponConfig struct {
	Damage              int       `toml:"damage"`
	SpreadAngles        []float64 `toml:"spread_angles"`
	PiercingSizeFactor  float64   `toml:"piercing_size_factor"`
	PiercingSpeedFactor float64   `toml:"piercing_speed_factor"`
}

type ScoringConfig struct {
	Hit  int `toml:"hit"`
	Kill int `toml:"kill"`
}

type PowerUpConfig struct {
	KillMilestone int                           `toml:"kill_milestone"`
	Duration      Duration                      `toml:"duration"`
	OfferCount    int                           `toml:"offer_count"`
	OverlapPolicy OverlapPolicy                 `toml:"overlap_policy"`
	Catalog       []component.PowerUpDefinition `toml:"catalog"`
}

type DifficultyConfig struct {
	StepElapsed int      `toml:"step_elapsed"`
	Floor       Duration `toml:"floor"`
	Step        Duration `toml:"step"`
}

type TimingConfig struct {
	Tick        Duration `toml:"tick"`
	ElapsedUnit Duration `toml:"elapsed_unit"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{Width: parameter.ArenaWidth, Height: parameter.ArenaHeight},
		Actor: ActorConfig{
			Radius:             parameter.PlayerRadius,
			Speed:              parameter.PlayerSpeed,
			MaxHealth:          parameter.PlayerMaxHealth,
			ShootInterval:      parameter.PlayerShootInterval,
			InvincibilityTicks: parameter.PlayerInvincibilityTicks,
			ContactDamage:      parameter.PlayerContactDamage,
			ProjectileRadius:   parameter.ProjectileRadius,
			ProjectileSpeed:    parameter.ProjectileSpeed,
		},
		Adversaries: AdversaryTable{
			Basic:  AdversaryStats{parameter.BasicRadius, parameter.BasicSpeed, parameter.BasicHealth, mustColor(parameter.BasicColor)},
			Fast:   AdversaryStats{parameter.FastRadius, parameter.FastSpeed, parameter.FastHealth, mustColor(parameter.FastColor)},
			Tank:   AdversaryStats{parameter.TankRadius, parameter.TankSpeed, parameter.TankHealth, mustColor(parameter.TankColor)},
			ZigZag: AdversaryStats{parameter.ZigZagRadius, parameter.ZigZagSpeed, parameter.ZigZagHealth, mustColor(parameter.ZigZagColor)},
		},
		Movement: MovementConfig{
			TankMoveEvery:   parameter.TankMoveEvery,
			ZigZagAmplitude: parameter.ZigZagAmplitude,
			ZigZagFrequency: parameter.ZigZagFrequency,
		},
		Spawn: SpawnConfig{
			Interval:       Duration(parameter.SpawnIntervalMs * time.Millisecond),
			BatchSize:      parameter.SpawnBatchSize,
			MaxAdversaries: parameter.MaxAdversaries,
		},
		Weapon: WeaponConfig{
			Damage:              parameter.ProjectileDamage,
			SpreadAngles:        slices.Clone(parameter.SpreadAnglesDeg[:]),
			PiercingSizeFactor:  parameter.PiercingSizeFactor,
			PiercingSpeedFactor: parameter.PiercingSpeedFactor,
		},
		Scoring: ScoringConfig{Hit: parameter.ScoreHit, Kill: parameter.ScoreKill},
		PowerUp: PowerUpConfig{
			KillMilestone: parameter.PowerUpKillMilestone,
			Duration:      Duration(parameter.PowerUpDuration),
			OfferCount:    parameter.PowerUpOfferCount,
			OverlapPolicy: OverlapPolicy(parameter.PowerUpOverlapPolicy),
			Catalog:       DefaultCatalog(),
		},
		Difficulty: DifficultyConfig{
			StepElapsed: parameter.DifficultyStepElapsed,
			Floor:       Duration(parameter.DifficultyIntervalFloorMs * time.Millisecond),
			Step:        Duration(parameter.DifficultyIntervalStepMs * time.Millisecond),
		},
		Timing: TimingConfig{
			Tick:        Duration(parameter.TickInterval),
			ElapsedUnit: Duration(parameter.ElapsedUnit),
		},
		Keys: DefaultKeys(),
		Seed: parameter.RandomSeed,
	}
}

// DefaultCatalog returns a fresh copy of the built-in power-up catalog
func DefaultCatalog() []component.PowerUpDefinition {
	m := parameter.PowerUpStatMultiplier
	return []component.PowerUpDefinition{
		{Kind: component.PowerUpFireRate, Label: "Fire Rate", Multiplier: m, Description: "Fire 20% faster"},
		{Kind: component.PowerUpBulletSize, Label: "Bullet Size", Multiplier: m, Description: "Increase bullet size by 20%"},
		{Kind: component.PowerUpPlayerSpeed, Label: "Player Speed", Multiplier: m, Description: "Increase movement speed by 20%"},
		{Kind: component.PowerUpBulletSpeed, Label: "Bullet Speed", Multiplier: m, Description: "Increase bullet speed by 20%"},
		{Kind: component.PowerUpSpreadShot, Label: "Spread Shot", Description: "Fire 3 bullets in a spread pattern"},
		{Kind: component.PowerUpPiercingShot, Label: "Piercing Shot", Description: "Bullets pierce through enemies"},
		{Kind: component.PowerUpExplosiveShot, Label: "Explosive Shot", Description: "Bullets explode on impact"},
	}
}

// DefaultKeys returns the built-in terminal bindings, key name to action name
func DefaultKeys() map[string]string {
	return map[string]string{
		"up":    "move_up",
		"down":  "move_down",
		"left":  "move_left",
		"right": "move_right",
		"w":     "move_up",
		"s":     "move_down",
		"a":     "move_left",
		"d":     "move_right",
		"k":     "move_up",
		"j":     "move_down",
		"h":     "move_left",
		"l":     "move_right",
		"tab":   "cycle_variant",
		"1":     "choose_1",
		"2":     "choose_2",
		"3":     "choose_3",
		"q":     "quit",
		"esc":   "quit",
	}
}

// Clone returns a deep copy
func (c Config) Clone() Config {
	c.Weapon.SpreadAngles = slices.Clone(c.Weapon.SpreadAngles)
	c.PowerUp.Catalog = slices.Clone(c.PowerUp.Catalog)
	if c.Keys != nil {
		keys := make(map[string]string, len(c.Keys))
		for k, v := range c.Keys {
			keys[k] = v
		}
		c.Keys = keys
	}
	return c
}

func mustColor(name string) core.RGB {
	c, err := core.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}
