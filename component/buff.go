package component

import (
	"time"
)

// PowerUpKind identifies a catalog effect
type PowerUpKind uint8

const (
	PowerUpFireRate PowerUpKind = iota
	PowerUpBulletSize
	PowerUpPlayerSpeed
	PowerUpBulletSpeed
	PowerUpSpreadShot
	PowerUpPiercingShot
	PowerUpExplosiveShot

	PowerUpKindCount
)

var powerUpKindNames = [PowerUpKindCount]string{
	"fireRate", "bulletSize", "playerSpeed", "bulletSpeed",
	"spreadShot", "piercingShot", "explosiveShot",
}

func (k PowerUpKind) String() string {
	if k < PowerUpKindCount {
		return powerUpKindNames[k]
	}
	return "unknown"
}

// ParsePowerUpKind maps a catalog name to its kind
func ParsePowerUpKind(s string) (PowerUpKind, bool) {
	for i, name := range powerUpKindNames {
		if name == s {
			return PowerUpKind(i), true
		}
	}
	return 0, false
}

// MarshalText lets catalog entries be written by name
func (k PowerUpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText lets catalog entries be read by name
func (k *PowerUpKind) UnmarshalText(text []byte) error {
	parsed, ok := ParsePowerUpKind(string(text))
	if !ok {
		return &UnknownPowerUpError{Name: string(text)}
	}
	*k = parsed
	return nil
}

// UnknownPowerUpError reports a catalog name with no effect behind it
type UnknownPowerUpError struct {
	Name string
}

func (e *UnknownPowerUpError) Error() string {
	return "unknown power-up " + e.Name
}

// Multiplicative kinds scale an actor stat and are reversed on expiry
func (k PowerUpKind) Multiplicative() bool {
	return k <= PowerUpBulletSpeed
}

// Unlocks returns the projectile variant a kind permanently unlocks
func (k PowerUpKind) Unlocks() (ProjectileType, bool) {
	switch k {
	case PowerUpSpreadShot:
		return ProjectileSpread, true
	case PowerUpPiercingShot:
		return ProjectilePiercing, true
	case PowerUpExplosiveShot:
		return ProjectileExplosive, true
	default:
		return 0, false
	}
}

// PowerUpDefinition is a static catalog entry
type PowerUpDefinition struct {
	Kind        PowerUpKind `toml:"name"`
	Label       string      `toml:"label"`
	Multiplier  float64     `toml:"multiplier,omitempty"` // 0 when the kind has none
	Description string      `toml:"description"`
}

// Name returns the catalog identifier
func (d PowerUpDefinition) Name() string {
	return d.Kind.String()
}

// ActivePowerUp is the single live effect slot
type ActivePowerUp struct {
	Definition  PowerUpDefinition
	ActivatedAt time.Time
	ExpiresAt   time.Time
}

// Expired is strict: the effect is live at exactly ExpiresAt
func (a *ActivePowerUp) Expired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}

// Remaining returns time left, zero once expired
func (a *ActivePowerUp) Remaining(now time.Time) time.Duration {
	return max(a.ExpiresAt.Sub(now), 0)
}
