package parameter

import "math"

// Adversary variants: radius, speed per tick, hit points, color name
const (
	BasicRadius = 15.0
	BasicSpeed  = 1.5
	BasicHealth = 2
	BasicColor  = "red"

	FastRadius = 10.0
	FastSpeed  = 3.0
	FastHealth = 1
	FastColor  = "orange"

	TankRadius = 25.0
	TankSpeed  = 0.7
	TankHealth = 5
	TankColor  = "darkred"

	ZigZagRadius = 12.0
	ZigZagSpeed  = 2.0
	ZigZagHealth = 3
	ZigZagColor  = "purple"
)

// Movement strategies
const (
	// TankMoveEvery gates tank movement to ticks where counter % TankMoveEvery == 0
	TankMoveEvery = 3

	// ZigZagAmplitude is the peak angular offset from the direct heading
	ZigZagAmplitude = math.Pi / 4

	// ZigZagFrequency scales the movement counter into the oscillation phase
	ZigZagFrequency = 0.1
)

// Spawning
const (
	// MaxAdversaries caps concurrent live adversaries
	MaxAdversaries = 100

	// SpawnIntervalMs is the starting spawn cadence
	SpawnIntervalMs = 500

	// SpawnBatchSize is adversaries attempted per spawn
	SpawnBatchSize = 3
)
