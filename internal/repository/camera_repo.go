package repository

import (
	"context"
	"time"

	"lensycam/internal/domain"

	"gorm.io/gorm"
)

type CameraRepository struct {
	db *gorm.DB
}

func NewCameraRepository(db *gorm.DB) *CameraRepository {
	return &CameraRepository{db: db}
}

type cameraModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Brand         string    `gorm:"column:brand;not null"`
	Model         string    `gorm:"column:model;not null"`
	Category      string    `gorm:"column:category;not null"`
	SerialNumber  *string   `gorm:"column:serial_number;uniqueIndex"`
	PurchaseDate  *string   `gorm:"column:purchase_date"`
	PurchasePrice *float64  `gorm:"column:purchase_price"`
	DailyRate     float64   `gorm:"column:daily_rate;not null"`
	HourlyRate    *float64  `gorm:"column:hourly_rate"`
	Status        string    `gorm:"column:status;index"`
	Condition     string    `gorm:"column:condition"`
	Description   string    `gorm:"column:description"`
	ImageURL      string    `gorm:"column:image_url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (cameraModel) TableName() string { return "cameras" }

func toDomainCamera(m cameraModel) *domain.Camera {
	return &domain.Camera{
		ID:            m.ID,
		Name:          m.Name,
		Brand:         m.Brand,
		Model:         m.Model,
		Category:      m.Category,
		SerialNumber:  m.SerialNumber,
		PurchaseDate:  m.PurchaseDate,
		PurchasePrice: m.PurchasePrice,
		DailyRate:     m.DailyRate,
		HourlyRate:    m.HourlyRate,
		Status:        domain.CameraStatus(m.Status),
		Condition:     m.Condition,
		Description:   m.Description,
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toCameraModel(c *domain.Camera) cameraModel {
	return cameraModel{
		ID:            c.ID,
		Name:          c.Name,
		Brand:         c.Brand,
		Model:         c.Model,
		Category:      c.Category,
		SerialNumber:  c.SerialNumber,
		PurchaseDate:  c.PurchaseDate,
		PurchasePrice: c.PurchasePrice,
		DailyRate:     c.DailyRate,
		HourlyRate:    c.HourlyRate,
		Status:        string(c.Status),
		Condition:     c.Condition,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type CameraFilter struct {
	Status   string
	Category string
	Search   string
}

func (r *CameraRepository) List(ctx context.Context, f CameraFilter) ([]domain.Camera, error) {
	q := r.db.WithContext(ctx).Model(&cameraModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR brand LIKE ? OR model LIKE ? OR serial_number LIKE ?",
			like, like, like, like)
	}

	var ms []cameraModel
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Camera, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCamera(m))
	}
	return out, nil
}

func (r *CameraRepository) GetByID(ctx context.Context, id int64) (*domain.Camera, error) {
	var m cameraModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainCamera(m), nil
}

func (r *CameraRepository) Create(ctx context.Context, c *domain.Camera) error {
	m := toCameraModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCamera(m)
	return nil
}

func (r *CameraRepository) Update(ctx context.Context, c *domain.Camera) error {
	m := toCameraModel(c)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCamera(m)
	return nil
}

func (r *CameraRepository) SetStatus(ctx context.Context, id int64, status domain.CameraStatus) error {
	return r.db.WithContext(ctx).Model(&cameraModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *CameraRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&cameraModel{}, id).Error
}

func (r *CameraRepository) CountByStatus(ctx context.Context, status domain.CameraStatus) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).Model(&cameraModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	err := q.Count(&cnt).Error
	return cnt, err
}
