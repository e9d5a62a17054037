package project

import (
	"context"
	"time"

	"tatvaops/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Project, error)
	SetGenerated(ctx context.Context, id int64, title, notes string, start, end time.Time, totalCost int64, generated bool) error
	ClearGenerated(ctx context.Context, id int64) error
}

type MilestoneStore interface {
	ReplaceSchedule(ctx context.Context, projectID int64, ms []domain.Milestone) error
	GetSchedule(ctx context.Context, projectID int64) ([]domain.Milestone, error)
}

// SessionFlags is the slice of the session service the project module needs.
type SessionFlags interface {
	InspectionStatus(ctx context.Context, userID int64) (domain.InspectionStatus, error)
	SetMilestonesGenerated(ctx context.Context, userID int64, generated bool) error
	MilestonesGenerated(ctx context.Context, userID int64) (bool, error)
}
