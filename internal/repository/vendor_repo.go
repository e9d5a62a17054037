package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tatvaops/internal/domain"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

type vendorModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Specialty    string    `gorm:"column:specialty"`
	Rating       float64   `gorm:"column:rating"`
	QuoteAmount  int64     `gorm:"column:quote_amount"`
	QuoteDetails string    `gorm:"column:quote_details;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vendorModel) TableName() string { return "vendors" }

type vendorSelectionModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	VendorID   int64     `gorm:"column:vendor_id"`
	Action     string    `gorm:"column:action"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (vendorSelectionModel) TableName() string { return "vendor_selections" }

func toDomainVendor(m vendorModel) domain.Vendor {
	return domain.Vendor{
		ID:           m.ID,
		Name:         m.Name,
		Specialty:    m.Specialty,
		Rating:       m.Rating,
		QuoteAmount:  m.QuoteAmount,
		QuoteDetails: m.QuoteDetails,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *VendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	var rows []vendorModel
	err := r.db.WithContext(ctx).
		Order("rating DESC, name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Vendor, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainVendor(row))
	}
	return out, nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var row vendorModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	v := toDomainVendor(row)
	return &v, nil
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	row := vendorModel{
		Name:         v.Name,
		Specialty:    v.Specialty,
		Rating:       v.Rating,
		QuoteAmount:  v.QuoteAmount,
		QuoteDetails: v.QuoteDetails,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	v.ID = row.ID
	v.CreatedAt = row.CreatedAt
	v.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *VendorRepository) RecordSelection(ctx context.Context, sel *domain.VendorSelection) error {
	row := vendorSelectionModel{
		ID:         sel.ID,
		CustomerID: sel.CustomerID,
		VendorID:   sel.VendorID,
		Action:     string(sel.Action),
		CreatedAt:  time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	sel.CreatedAt = row.CreatedAt
	return nil
}
