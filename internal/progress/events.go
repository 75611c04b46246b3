package progress

import "fmt"

// Event is a progress notification for the UI collaborator.
type Event interface {
	progressEvent()
	String() string
}

// ScoreChanged is sent whenever the score moves.
type ScoreChanged struct {
	Score int
	Delta int
}

func (ScoreChanged) progressEvent() {}

func (e ScoreChanged) String() string {
	return fmt.Sprintf("+%d (score %d)", e.Delta, e.Score)
}

// CollectibleCollected is sent when a collectible is picked up.
type CollectibleCollected struct {
	ID    int
	Kind  Kind
	Value int
}

func (CollectibleCollected) progressEvent() {}

func (e CollectibleCollected) String() string {
	return fmt.Sprintf("picked up a %s", e.Kind)
}

// CollectibleRemoved is sent when a removal animation completes.
type CollectibleRemoved struct {
	ID int
}

func (CollectibleRemoved) progressEvent() {}

func (e CollectibleRemoved) String() string {
	return fmt.Sprintf("collectible %d removed", e.ID)
}

// PondDiscovered is sent the first time the player nears a pond.
type PondDiscovered struct {
	Index   int
	Visited int
	Total   int
}

func (PondDiscovered) progressEvent() {}

func (e PondDiscovered) String() string {
	return fmt.Sprintf("discovered a pond (%d/%d)", e.Visited, e.Total)
}

// ObjectiveCompleted is sent once per objective.
type ObjectiveCompleted struct {
	ID          ObjectiveID
	Description string
}

func (ObjectiveCompleted) progressEvent() {}

func (e ObjectiveCompleted) String() string {
	return "objective complete: " + e.Description
}

// GameWon is sent once, when all objectives hold at the same time.
type GameWon struct {
	Score   int
	Elapsed float64
}

func (GameWon) progressEvent() {}

func (e GameWon) String() string {
	return fmt.Sprintf("grove complete! score %d in %.1fs", e.Score, e.Elapsed)
}
