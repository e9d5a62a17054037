package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tatvaops/internal/domain"
	"tatvaops/internal/modules/milestone"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

type milestoneModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ProjectID   int64     `gorm:"column:project_id;uniqueIndex:idx_project_milestone_number"`
	Number      int       `gorm:"column:number;uniqueIndex:idx_project_milestone_number"`
	Position    int       `gorm:"column:position"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description;type:text"`
	Status      string    `gorm:"column:status"`
	Amount      int64     `gorm:"column:amount"`
	StartDate   time.Time `gorm:"column:start_date"`
	EndDate     time.Time `gorm:"column:end_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (milestoneModel) TableName() string { return "milestones" }

func toDomainMilestone(m milestoneModel) domain.Milestone {
	return domain.Milestone{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Number:      m.Number,
		Position:    m.Position,
		Title:       m.Title,
		Description: m.Description,
		Status:      domain.MilestoneStatus(m.Status),
		Amount:      m.Amount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMilestoneModel(m domain.Milestone) milestoneModel {
	return milestoneModel{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Number:      m.Number,
		Position:    m.Position,
		Title:       m.Title,
		Description: m.Description,
		Status:      string(m.Status),
		Amount:      m.Amount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MilestoneRepository) GetSchedule(ctx context.Context, projectID int64) ([]domain.Milestone, error) {
	var rows []milestoneModel
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Milestone, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainMilestone(row))
	}
	return out, nil
}

func (r *MilestoneRepository) GetByNumber(ctx context.Context, projectID int64, number int) (*domain.Milestone, error) {
	var row milestoneModel
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND number = ?", projectID, number).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	m := toDomainMilestone(row)
	return &m, nil
}

func (r *MilestoneRepository) Create(ctx context.Context, m *domain.Milestone) error {
	row := toMilestoneModel(*m)
	now := time.Now()
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	m.ID = row.ID
	m.CreatedAt = row.CreatedAt
	m.UpdatedAt = row.UpdatedAt
	return nil
}

// ReplaceSchedule atomically swaps a project's schedule for a freshly
// generated one. Regeneration discards the prior schedule entirely.
func (r *MilestoneRepository) ReplaceSchedule(ctx context.Context, projectID int64, ms []domain.Milestone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&milestoneModel{}).Error; err != nil {
			return err
		}
		now := time.Now()
		for i := range ms {
			row := toMilestoneModel(ms[i])
			row.ID = 0
			row.CreatedAt = now
			row.UpdatedAt = now
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			ms[i].ID = row.ID
		}
		return nil
	})
}

func (r *MilestoneRepository) UpdateFields(ctx context.Context, projectID int64, number int, patch milestone.FieldPatch) error {
	res := r.db.WithContext(ctx).
		Model(&milestoneModel{}).
		Where("project_id = ? AND number = ?", projectID, number).
		Updates(map[string]interface{}{
			"description": patch.Description,
			"amount":      patch.Amount,
			"start_date":  patch.StartDate,
			"end_date":    patch.EndDate,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *MilestoneRepository) UpdatePositions(ctx context.Context, projectID int64, numbersInOrder []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, number := range numbersInOrder {
			err := tx.Model(&milestoneModel{}).
				Where("project_id = ? AND number = ?", projectID, number).
				Update("position", i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MilestoneRepository) UpdateStatus(ctx context.Context, projectID int64, number int, status domain.MilestoneStatus) error {
	res := r.db.WithContext(ctx).
		Model(&milestoneModel{}).
		Where("project_id = ? AND number = ?", projectID, number).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
