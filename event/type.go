package event

// EventType represents the type of game event
type EventType int

const (
	// EventAdversarySpawned signals a new adversary in the store
	// Trigger: SpawnSystem | Payload: *AdversaryPayload
	EventAdversarySpawned EventType = iota

	// EventAdversaryHit signals a non-lethal projectile hit
	// Trigger: CombatSystem | Payload: *AdversaryPayload
	EventAdversaryHit

	// EventAdversaryKilled signals an adversary removed at zero health
	// Trigger: CombatSystem | Payload: *AdversaryPayload
	EventAdversaryKilled

	// EventProjectileFired signals one volley leaving the actor
	// Trigger: WeaponSystem | Payload: *VolleyPayload
	EventProjectileFired

	// EventMilestoneReached signals a kill milestone and the offered power-ups
	// Trigger: CombatSystem | Consumer: Simulation (pause) | Payload: *MilestonePayload
	EventMilestoneReached

	// EventPowerUpActivated signals an effect entering the active slot
	// Trigger: PowerUpSystem | Payload: *PowerUpPayload
	EventPowerUpActivated

	// EventPowerUpExpired signals an effect leaving the active slot
	// Trigger: PowerUpSystem (expiry or revert on overlap) | Payload: *PowerUpPayload
	EventPowerUpExpired

	// EventActorDamaged signals contact damage applied to the actor
	// Trigger: CombatSystem | Payload: *ActorDamagedPayload
	EventActorDamaged

	// EventActorDefeated signals the terminal state
	// Trigger: CombatSystem | Payload: *ActorDamagedPayload
	EventActorDefeated

	// EventSpawnIntervalChanged signals a difficulty step
	// Trigger: DifficultySystem | Payload: *SpawnIntervalPayload
	EventSpawnIntervalChanged

	// EventChoiceResolved signals the player picked a power-up and the game resumed
	// Trigger: Simulation | Payload: *PowerUpPayload
	EventChoiceResolved

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"AdversarySpawned",
	"AdversaryHit",
	"AdversaryKilled",
	"ProjectileFired",
	"MilestoneReached",
	"PowerUpActivated",
	"PowerUpExpired",
	"ActorDamaged",
	"ActorDefeated",
	"SpawnIntervalChanged",
	"ChoiceResolved",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// AllTypes lists every event type, for handlers that observe everything
func AllTypes() []EventType {
	types := make([]EventType, eventTypeCount)
	for i := range types {
		types[i] = EventType(i)
	}
	return types
}

// GameEvent is one queued occurrence
// Tick is the simulation tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
