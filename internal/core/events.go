package core

// Event is an outbound signal produced by a simulation tick and consumed
// by the presentation layer. The set is closed; events are delivered
// synchronously on the StepResult and never read back by the game.
type Event interface {
	gameEvent()
}

// PlayerHitEvent is emitted when a damage source connects with the player.
type PlayerHitEvent struct {
	// LivesLeft is the life count after the hit was applied.
	LivesLeft int
}

func (PlayerHitEvent) gameEvent() {}

// BurstEvent requests a particle burst at a world position. Purely visual
// feedback: the platform may flash, shake, or ignore it.
type BurstEvent struct {
	Pos   Vec3
	Color Color
}

func (BurstEvent) gameEvent() {}

// CollectEvent is emitted when a pickup is collected.
type CollectEvent struct {
	Pos   Vec3
	Score int // Score awarded, 0 for non-scoring pickups
}

func (CollectEvent) gameEvent() {}
