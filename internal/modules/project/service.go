package project

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tatvaops/internal/domain"
	"tatvaops/internal/modules/milestone"
	"tatvaops/internal/pkg/numword"
)

const dateLayout = "2006-01-02"

type Service struct {
	repo       Repository
	milestones MilestoneStore
	session    SessionFlags
}

func NewService(repo Repository, milestones MilestoneStore, session SessionFlags) *Service {
	return &Service{repo: repo, milestones: milestones, session: session}
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateProjectRequest) (*domain.Project, error) {
	p := &domain.Project{
		CustomerID: customerID,
		Title:      req.Title,
		Notes:      req.Notes,
		Status:     domain.ProjectPending,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetForUser loads a project and enforces ownership for customers: a
// customer only ever sees their own projects. Vendors work across customer
// projects and are gated by the role middleware instead.
func (s *Service) GetForUser(ctx context.Context, id, userID int64, role domain.UserRole) (*domain.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleCustomer && p.CustomerID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Project, error) {
	return s.repo.GetByCustomerID(ctx, customerID)
}

// GenerateMilestones validates the setup form, runs the schedule generator
// and persists the result. A rerun for a project that already has a schedule
// discards the old one and writes the new schedule in its place.
//
// Generation is gated on the vendor having completed the site inspection;
// the cost echo in words follows the Indian crore/lakh grouping.
func (s *Service) GenerateMilestones(ctx context.Context, projectID, vendorUserID int64, req GenerateMilestonesRequest) (*GenerateMilestonesResponse, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	status, err := s.session.InspectionStatus(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	if !status.Completed {
		return nil, ErrInspectionRequired
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}

	totalDays := req.Duration
	if totalDays == 0 && req.EndDate != "" {
		end, perr := time.Parse(dateLayout, req.EndDate)
		if perr != nil {
			return nil, ErrValidation
		}
		totalDays = int(end.Sub(start).Hours() / 24)
	}
	if totalDays <= 0 {
		return nil, ErrValidation
	}

	title := req.ProjectTitle
	if title == "" {
		title = p.Title
	}

	ms, err := milestone.Generate(milestone.GenerationInput{
		ProjectID:    projectID,
		ProjectTitle: title,
		StartDate:    start,
		TotalDays:    totalDays,
		Count:        req.NumberOfMilestones,
		TotalCost:    req.TotalCost,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, milestone.ErrInvalidInput) {
			return nil, ErrValidation
		}
		return nil, err
	}

	if err := s.milestones.ReplaceSchedule(ctx, projectID, ms); err != nil {
		return nil, err
	}

	scheduleEnd := ms[len(ms)-1].EndDate
	if err := s.repo.SetGenerated(ctx, projectID, title, req.Notes, ms[0].StartDate, scheduleEnd, req.TotalCost, true); err != nil {
		return nil, err
	}
	if err := s.session.SetMilestonesGenerated(ctx, vendorUserID, true); err != nil {
		return nil, err
	}

	words, err := numword.Rupees(req.TotalCost)
	if err != nil {
		return nil, err
	}

	return &GenerateMilestonesResponse{
		Project: &ProjectResponse{
			ID:                  p.ID,
			Title:               title,
			Status:              string(p.Status),
			StartDate:           ms[0].StartDate.Format(dateLayout),
			EndDate:             scheduleEnd.Format(dateLayout),
			TotalCost:           req.TotalCost,
			TotalCostInWords:    words,
			MilestonesGenerated: true,
		},
		Milestones:       ms,
		TotalCost:        req.TotalCost,
		TotalCostInWords: words,
	}, nil
}

// ResetMilestones reopens the setup form: it drops the milestones_generated
// gate so the vendor can regenerate. The stored schedule stays in place
// until a new generate run replaces it.
func (s *Service) ResetMilestones(ctx context.Context, projectID, vendorUserID int64) error {
	if _, err := s.Get(ctx, projectID); err != nil {
		return err
	}
	if err := s.repo.ClearGenerated(ctx, projectID); err != nil {
		return err
	}
	return s.session.SetMilestonesGenerated(ctx, vendorUserID, false)
}
