package domain

import "time"

type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "pending"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

type Project struct {
	ID                  int64         `json:"id"`
	CustomerID          int64         `json:"customer_id" validate:"required"`
	VendorID            *int64        `json:"vendor_id,omitempty"`
	Title               string        `json:"title" validate:"required"`
	Notes               string        `json:"notes,omitempty" gorm:"type:text"`
	Status              ProjectStatus `json:"status"`
	StartDate           *time.Time    `json:"start_date,omitempty"`
	EndDate             *time.Time    `json:"end_date,omitempty"`
	TotalCost           int64         `json:"total_cost" validate:"gte=0"`
	MilestonesGenerated bool          `json:"milestones_generated"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
