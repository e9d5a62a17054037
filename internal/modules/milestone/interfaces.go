package milestone

import (
	"context"
	"time"

	"tatvaops/internal/domain"
)

// FieldPatch carries the draft values merged into a milestone on save.
type FieldPatch struct {
	Description string
	Amount      int64
	StartDate   time.Time
	EndDate     time.Time
}

// Repository defines the interface for milestone persistence
type Repository interface {
	GetSchedule(ctx context.Context, projectID int64) ([]domain.Milestone, error)
	GetByNumber(ctx context.Context, projectID int64, number int) (*domain.Milestone, error)
	Create(ctx context.Context, m *domain.Milestone) error
	ReplaceSchedule(ctx context.Context, projectID int64, ms []domain.Milestone) error
	UpdateFields(ctx context.Context, projectID int64, number int, patch FieldPatch) error
	UpdatePositions(ctx context.Context, projectID int64, numbersInOrder []int) error
	UpdateStatus(ctx context.Context, projectID int64, number int, status domain.MilestoneStatus) error
}

// ProgressObserver receives schedule snapshots after a status change.
// Observation is presentational only: implementations must never fail
// the caller.
type ProgressObserver interface {
	Observe(projectID int64, prev, curr []domain.Milestone)
}
