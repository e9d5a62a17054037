package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tatvaops/internal/domain"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID                  int64      `gorm:"column:id;primaryKey"`
	CustomerID          int64      `gorm:"column:customer_id"`
	VendorID            *int64     `gorm:"column:vendor_id"`
	Title               string     `gorm:"column:title"`
	Notes               *string    `gorm:"column:notes;type:text"`
	Status              string     `gorm:"column:status"`
	StartDate           *time.Time `gorm:"column:start_date"`
	EndDate             *time.Time `gorm:"column:end_date"`
	TotalCost           int64      `gorm:"column:total_cost"`
	MilestonesGenerated bool       `gorm:"column:milestones_generated"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Project{
		ID:                  m.ID,
		CustomerID:          m.CustomerID,
		VendorID:            m.VendorID,
		Title:               m.Title,
		Notes:               notes,
		Status:              domain.ProjectStatus(m.Status),
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		TotalCost:           m.TotalCost,
		MilestonesGenerated: m.MilestonesGenerated,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	var notes *string
	if p.Notes != "" {
		v := p.Notes
		notes = &v
	}

	return projectModel{
		ID:                  p.ID,
		CustomerID:          p.CustomerID,
		VendorID:            p.VendorID,
		Title:               p.Title,
		Notes:               notes,
		Status:              string(p.Status),
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		TotalCost:           p.TotalCost,
		MilestonesGenerated: p.MilestonesGenerated,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	row := toProjectModel(p)
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	p.ID = row.ID
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var row projectModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return toDomainProject(row), nil
}

func (r *ProjectRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]domain.Project, error) {
	var rows []projectModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainProject(row))
	}
	return out, nil
}

// SetGenerated records the outcome of a generate/regenerate run: the
// project's dates, cost and the milestones_generated gate in one update.
func (r *ProjectRepository) SetGenerated(ctx context.Context, id int64, title string, notes string, start, end time.Time, totalCost int64, generated bool) error {
	updates := map[string]interface{}{
		"milestones_generated": generated,
		"start_date":           start,
		"end_date":             end,
		"total_cost":           totalCost,
		"updated_at":           time.Now(),
	}
	if title != "" {
		updates["title"] = title
	}
	if notes != "" {
		updates["notes"] = notes
	}

	res := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) ClearGenerated(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"milestones_generated": false,
			"updated_at":           time.Now(),
		}).Error
}

// AssignVendor stamps (or clears, with nil) the selected vendor on all of a
// customer's projects, mirroring the selection flag.
func (r *ProjectRepository) AssignVendor(ctx context.Context, customerID int64, vendorID *int64) error {
	return r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where("customer_id = ?", customerID).
		Updates(map[string]interface{}{
			"vendor_id":  vendorID,
			"updated_at": time.Now(),
		}).Error
}
