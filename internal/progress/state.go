package progress

// Phase is the one-way Playing -> Won state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
)

func (p Phase) String() string {
	if p == PhaseWon {
		return "won"
	}
	return "playing"
}

// GameState is the progress of one session.
type GameState struct {
	Score          int
	GemsCollected  int
	TotalGems      int
	CoinsCollected int
	TreasureFound  bool
	TotalTreasure  int
	VisitedPonds   map[int]struct{}
	TotalPonds     int
	Objectives     [3]Objective
	Phase          Phase
	Elapsed        float64 // seconds played until the win
}

func newGameState(totalGems, totalTreasure, totalPonds int) GameState {
	return GameState{
		TotalGems:     totalGems,
		TotalTreasure: totalTreasure,
		TotalPonds:    totalPonds,
		VisitedPonds:  make(map[int]struct{}),
		Objectives:    defaultObjectives(),
	}
}

// Won reports whether the session reached its terminal state.
func (s GameState) Won() bool {
	return s.Phase == PhaseWon
}

// PondsVisited returns the number of distinct ponds discovered.
func (s GameState) PondsVisited() int {
	return len(s.VisitedPonds)
}

// Objective returns the objective with the given ID.
func (s GameState) Objective(id ObjectiveID) Objective {
	for _, o := range s.Objectives {
		if o.ID == id {
			return o
		}
	}
	return Objective{ID: id}
}

// CompletedObjectives counts finished objectives.
func (s GameState) CompletedObjectives() int {
	n := 0
	for _, o := range s.Objectives {
		if o.Completed() {
			n++
		}
	}
	return n
}

// clone returns a copy that shares no maps with s.
func (s GameState) clone() GameState {
	visited := make(map[int]struct{}, len(s.VisitedPonds))
	for k := range s.VisitedPonds {
		visited[k] = struct{}{}
	}
	s.VisitedPonds = visited
	return s
}

// gemsDone, treasureDone and pondsDone are the objective predicates. A
// layout without gems, treasure or ponds has that objective met from the
// start.
func (s GameState) gemsDone() bool {
	return s.GemsCollected >= s.TotalGems
}

func (s GameState) treasureDone() bool {
	return s.TreasureFound || s.TotalTreasure == 0
}

func (s GameState) pondsDone() bool {
	return len(s.VisitedPonds) >= s.TotalPonds
}
