package domain

import "time"

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// statusRank orders the milestone state machine. Transitions are only
// allowed towards a higher rank.
var statusRank = map[MilestoneStatus]int{
	MilestonePending:    0,
	MilestoneInProgress: 1,
	MilestoneCompleted:  2,
}

func (s MilestoneStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a forward move.
func (s MilestoneStatus) CanTransitionTo(next MilestoneStatus) bool {
	return s.Valid() && next.Valid() && statusRank[next] > statusRank[s]
}

// Milestone is one scheduled, priced phase of a project. Number is the
// stable identity assigned at generation time; Position is the current
// display slot and changes on reorder while Number never does.
type Milestone struct {
	ID          int64           `json:"id"`
	ProjectID   int64           `json:"project_id" validate:"required"`
	Number      int             `json:"number" validate:"required,gte=1"`
	Position    int             `json:"position"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Status      MilestoneStatus `json:"status"`
	Amount      int64           `json:"amount" validate:"gte=0"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DurationDays is the inclusive day count of the milestone's date range:
// a milestone starting and ending on the same day lasts one day.
func (m Milestone) DurationDays() int {
	return int(m.EndDate.Sub(m.StartDate).Hours()/24) + 1
}
