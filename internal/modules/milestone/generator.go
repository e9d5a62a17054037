package milestone

import (
	"time"

	"tatvaops/internal/domain"
)

// GenerationInput is one "create milestones" submission from the vendor form.
type GenerationInput struct {
	ProjectID    int64
	ProjectTitle string
	StartDate    time.Time
	TotalDays    int
	Count        int
	TotalCost    int64
	Notes        string
}

// Generate deterministically partitions the project duration and cost into
// Count sequential milestones. Cost and days are split with floor division;
// the last milestone absorbs both rounding remainders, so the generated
// amounts sum exactly to TotalCost and the day counts to TotalDays.
//
// Dates are inclusive day ranges: milestone i+1 starts the day after
// milestone i ends, and the whole schedule covers exactly TotalDays
// calendar days starting at StartDate. Inputs with fewer days than
// milestones are rejected so every milestone spans at least one day.
func Generate(in GenerationInput) ([]domain.Milestone, error) {
	if in.Count < 1 || in.TotalCost < 0 || in.StartDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if in.TotalDays < in.Count {
		return nil, ErrInvalidInput
	}

	costPer := in.TotalCost / int64(in.Count)
	daysPer := in.TotalDays / in.Count

	out := make([]domain.Milestone, 0, in.Count)
	start := day(in.StartDate)

	for i := 0; i < in.Count; i++ {
		days := daysPer
		amount := costPer
		if i == in.Count-1 {
			days = in.TotalDays - daysPer*(in.Count-1)
			amount = in.TotalCost - costPer*int64(in.Count-1)
		}

		end := start.AddDate(0, 0, days-1)
		title, description := phaseFor(i)

		status := domain.MilestonePending
		if i == 0 {
			status = domain.MilestoneInProgress
		}

		out = append(out, domain.Milestone{
			ProjectID:   in.ProjectID,
			Number:      i + 1,
			Position:    i + 1,
			Title:       title,
			Description: description,
			Status:      status,
			Amount:      amount,
			StartDate:   start,
			EndDate:     end,
		})

		start = end.AddDate(0, 0, 1)
	}

	return out, nil
}

// day truncates t to a calendar date at UTC midnight.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
