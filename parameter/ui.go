package parameter

// Power-up choice overlay, in arena units
const (
	ChoiceButtonWidth   = 160.0
	ChoiceButtonHeight  = 120.0
	ChoiceButtonSpacing = 20.0
	ChoicePanelWidth    = 600.0
	ChoicePanelHeight   = 400.0

	// ChoiceRowOffset is the distance from the panel top to the button row
	ChoiceRowOffset = 80.0
)

// Terminal host
const (
	// HeldKeyWindowMs is how long a key counts as held after its last press/repeat
	// Terminals report presses and auto-repeat only, never releases
	HeldKeyWindowMs = 120

	// HUDRows is the number of rows reserved under the arena for HUD text
	HUDRows = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "arena.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Spectator
const (
	SpectatorSendQueue    = 16
	SpectatorWriteTimeout = 10 // seconds
	SpectatorPingPeriod   = 54 // seconds
	SpectatorReadTimeout  = 60 // seconds
	SpectatorEveryNTicks  = 3
)
