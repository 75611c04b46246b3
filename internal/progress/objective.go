package progress

// ObjectiveID names one of the three win criteria.
type ObjectiveID string

const (
	ObjectiveGems     ObjectiveID = "collect-all-gems"
	ObjectiveTreasure ObjectiveID = "find-treasure"
	ObjectivePonds    ObjectiveID = "visit-all-ponds"
)

// Objective is a one-way Pending -> Completed criterion.
type Objective struct {
	ID          ObjectiveID
	Description string
	completed   bool
}

// Completed reports whether the objective is done.
func (o Objective) Completed() bool {
	return o.completed
}

// Complete marks the objective done and reports whether this call changed
// it. Completing twice is a no-op.
func (o *Objective) Complete() bool {
	if o.completed {
		return false
	}
	o.completed = true
	return true
}

// defaultObjectives returns the fixed objective set in display order.
func defaultObjectives() [3]Objective {
	return [3]Objective{
		{ID: ObjectiveGems, Description: "Collect all gems"},
		{ID: ObjectiveTreasure, Description: "Find the treasure"},
		{ID: ObjectivePonds, Description: "Visit every pond"},
	}
}
