package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionFlagRepository struct {
	db *gorm.DB
}

func NewSessionFlagRepository(db *gorm.DB) *SessionFlagRepository {
	return &SessionFlagRepository{db: db}
}

type sessionFlagModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_session_user_key"`
	Key       string    `gorm:"column:key;uniqueIndex:idx_session_user_key"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionFlagModel) TableName() string { return "session_flags" }

// Get returns the stored value for one flag, or "" when it was never set.
func (r *SessionFlagRepository) Get(ctx context.Context, userID int64, key string) (string, error) {
	var row sessionFlagModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *SessionFlagRepository) GetAll(ctx context.Context, userID int64) (map[string]string, error) {
	var rows []sessionFlagModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (r *SessionFlagRepository) Set(ctx context.Context, userID int64, key, value string) error {
	row := sessionFlagModel{
		UserID:    userID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *SessionFlagRepository) Delete(ctx context.Context, userID int64, key string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&sessionFlagModel{}).Error
}
