package repository

import (
	"context"
	"time"

	"lensycam/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     *string   `gorm:"column:email"`
	Phone     string    `gorm:"column:phone;not null"`
	Address   *string   `gorm:"column:address"`
	IDNumber  *string   `gorm:"column:id_number"`
	Notes     *string   `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optstr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Email:     deref(m.Email),
		Phone:     m.Phone,
		Address:   deref(m.Address),
		IDNumber:  deref(m.IDNumber),
		Notes:     deref(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     optstr(c.Email),
		Phone:     c.Phone,
		Address:   optstr(c.Address),
		IDNumber:  optstr(c.IDNumber),
		Notes:     optstr(c.Notes),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CustomerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customerModel{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	var ms []customerModel
	if err := q.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Customer, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&customerModel{}, id).Error
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&customerModel{}).Count(&cnt).Error
	return cnt, err
}
