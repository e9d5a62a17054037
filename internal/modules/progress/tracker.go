// Package progress derives presentational signals from milestone status
// changes: which milestone just completed or started, and the fill
// fraction for the progress bar. It only reads schedule snapshots and
// never owns business state.
package progress

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"tatvaops/internal/domain"
)

type EventKind string

const (
	EventMilestoneCompleted EventKind = "milestone_completed"
	EventMilestoneStarted   EventKind = "milestone_started"
)

// Event is one transient progress signal pushed to dashboard clients.
type Event struct {
	ID        string    `json:"id"`
	ProjectID int64     `json:"project_id"`
	Number    int       `json:"number"`
	Kind      EventKind `json:"kind"`
	Fraction  float64   `json:"fraction"`
	At        time.Time `json:"at"`
}

// Diff compares two schedule snapshots and reports the milestone numbers
// that newly became Completed and newly became InProgress.
func Diff(prev, curr []domain.Milestone) (completed, started []int) {
	before := make(map[int]domain.MilestoneStatus, len(prev))
	for _, m := range prev {
		before[m.Number] = m.Status
	}

	for _, m := range curr {
		old, seen := before[m.Number]
		if seen && old == m.Status {
			continue
		}
		switch m.Status {
		case domain.MilestoneCompleted:
			completed = append(completed, m.Number)
		case domain.MilestoneInProgress:
			started = append(started, m.Number)
		}
	}
	return completed, started
}

// Fraction is the progress-bar fill: completed count over total.
func Fraction(ms []domain.Milestone) float64 {
	if len(ms) == 0 {
		return 0
	}
	done := 0
	for _, m := range ms {
		if m.Status == domain.MilestoneCompleted {
			done++
		}
	}
	return float64(done) / float64(len(ms))
}

// EaseOut samples the fill animation from one fraction to another over
// steps frames using an ease-out cubic curve. The last sample lands
// exactly on the target.
func EaseOut(from, to float64, steps int) []float64 {
	if steps < 1 {
		return nil
	}
	out := make([]float64, steps)
	for i := 0; i < steps; i++ {
		t := float64(i+1) / float64(steps)
		eased := 1 - math.Pow(1-t, 3)
		out[i] = from + (to-from)*eased
	}
	out[steps-1] = to
	return out
}

// Broadcaster pushes events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(projectID int64, event Event)
}

// Tracker observes store snapshots and emits progress events. A failure
// anywhere in the derivation is contained here: milestone data integrity
// must never depend on animation plumbing.
type Tracker struct {
	hub Broadcaster
}

func NewTracker(hub Broadcaster) *Tracker {
	return &Tracker{hub: hub}
}

func (t *Tracker) Observe(projectID int64, prev, curr []domain.Milestone) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("progress_observer_panic project_id=%d err=%v", projectID, r)
		}
	}()

	completed, started := Diff(prev, curr)
	fraction := Fraction(curr)

	if t.hub == nil {
		return
	}
	now := time.Now().UTC()
	for _, n := range completed {
		t.hub.Broadcast(projectID, Event{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Number:    n,
			Kind:      EventMilestoneCompleted,
			Fraction:  fraction,
			At:        now,
		})
	}
	for _, n := range started {
		t.hub.Broadcast(projectID, Event{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Number:    n,
			Kind:      EventMilestoneStarted,
			Fraction:  fraction,
			At:        now,
		})
	}
}
