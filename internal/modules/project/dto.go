package project

import "tatvaops/internal/domain"

type CreateProjectRequest struct {
	Title string `json:"title" binding:"required"`
	Notes string `json:"notes"`
}

// GenerateMilestonesRequest mirrors the project setup form. Either Duration
// (in days) or EndDate must be supplied; when both are present Duration wins.
type GenerateMilestonesRequest struct {
	ProjectTitle       string `json:"project_title"`
	StartDate          string `json:"start_date" binding:"required" validate:"required,datetime=2006-01-02"`
	EndDate            string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Duration           int    `json:"duration" validate:"gte=0"`
	NumberOfMilestones int    `json:"number_of_milestones" binding:"required" validate:"required,gte=1,lte=60"`
	TotalCost          int64  `json:"total_cost" binding:"required" validate:"required,gte=0"`
	Notes              string `json:"notes"`
}

type GenerateMilestonesResponse struct {
	Project          *ProjectResponse   `json:"project"`
	Milestones       []domain.Milestone `json:"milestones"`
	TotalCost        int64              `json:"total_cost"`
	TotalCostInWords string             `json:"total_cost_in_words"`
}

type ProjectResponse struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Status              string `json:"status"`
	StartDate           string `json:"start_date,omitempty"`
	EndDate             string `json:"end_date,omitempty"`
	TotalCost           int64  `json:"total_cost"`
	TotalCostInWords    string `json:"total_cost_in_words,omitempty"`
	MilestonesGenerated bool   `json:"milestones_generated"`
}
