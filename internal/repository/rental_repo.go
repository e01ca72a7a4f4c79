package repository

import (
	"context"
	"time"

	"lensycam/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

type rentalModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	CameraID         int64     `gorm:"column:camera_id;index;not null"`
	CustomerID       int64     `gorm:"column:customer_id;index;not null"`
	StartDate        string    `gorm:"column:start_date;not null"`
	EndDate          string    `gorm:"column:end_date;not null"`
	StartTime        *string   `gorm:"column:start_time"`
	EndTime          *string   `gorm:"column:end_time"`
	ActualReturnDate *string   `gorm:"column:actual_return_date"`
	ActualReturnTime *string   `gorm:"column:actual_return_time"`
	DailyRate        float64   `gorm:"column:daily_rate"`
	HourlyRate       *float64  `gorm:"column:hourly_rate"`
	TotalAmount      float64   `gorm:"column:total_amount"`
	Deposit          float64   `gorm:"column:deposit"`
	Status           string    `gorm:"column:status;index"`
	RentalType       string    `gorm:"column:rental_type"`
	Notes            *string   `gorm:"column:notes"`
	CalendarEventID  *string   `gorm:"column:calendar_event_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (rentalModel) TableName() string { return "rentals" }

func toDomainRental(m rentalModel) *domain.Rental {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Rental{
		ID:               m.ID,
		CameraID:         m.CameraID,
		CustomerID:       m.CustomerID,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		ActualReturnDate: m.ActualReturnDate,
		ActualReturnTime: m.ActualReturnTime,
		DailyRate:        m.DailyRate,
		HourlyRate:       m.HourlyRate,
		TotalAmount:      m.TotalAmount,
		Deposit:          m.Deposit,
		Status:           domain.RentalStatus(m.Status),
		RentalType:       domain.RentalType(m.RentalType),
		Notes:            notes,
		CalendarEventID:  m.CalendarEventID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toRentalModel(r *domain.Rental) rentalModel {
	var notes *string
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return rentalModel{
		ID:               r.ID,
		CameraID:         r.CameraID,
		CustomerID:       r.CustomerID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		ActualReturnDate: r.ActualReturnDate,
		ActualReturnTime: r.ActualReturnTime,
		DailyRate:        r.DailyRate,
		HourlyRate:       r.HourlyRate,
		TotalAmount:      r.TotalAmount,
		Deposit:          r.Deposit,
		Status:           string(r.Status),
		RentalType:       string(r.RentalType),
		Notes:            notes,
		CalendarEventID:  r.CalendarEventID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toDomainRentals(ms []rentalModel) []domain.Rental {
	out := make([]domain.Rental, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRental(m))
	}
	return out
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var m rentalModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainRental(m), nil
}

type RentalFilter struct {
	Status     string
	CameraID   int64
	CustomerID int64
}

// List returns rentals newest first, optionally narrowed by status, camera or
// customer.
func (r *RentalRepository) List(ctx context.Context, f RentalFilter) ([]domain.Rental, error) {
	q := r.db.WithContext(ctx).Model(&rentalModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CameraID > 0 {
		q = q.Where("camera_id = ?", f.CameraID)
	}
	if f.CustomerID > 0 {
		q = q.Where("customer_id = ?", f.CustomerID)
	}

	var ms []rentalModel
	if err := q.Order("start_date DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainRentals(ms), nil
}

// ListActiveBetween returns active rentals whose date range intersects
// [startDate, endDate]. This narrows by calendar dates only; the time-of-day
// overlap policy is applied by the caller so it lives in exactly one place.
func (r *RentalRepository) ListActiveBetween(ctx context.Context, startDate, endDate string) ([]domain.Rental, error) {
	var ms []rentalModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?",
			string(domain.RentalActive), endDate, startDate).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainRentals(ms), nil
}

// ListNonCancelled returns every rental that counts toward revenue.
func (r *RentalRepository) ListNonCancelled(ctx context.Context) ([]domain.Rental, error) {
	var ms []rentalModel
	err := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.RentalCancelled)).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainRentals(ms), nil
}

// SaveIfNoConflict runs the admission sequence as one transaction: lock the
// camera row, read its active rentals, run the caller's conflict check, and
// only then insert or update the rental. Concurrent admissions for the same
// camera serialize on the row lock, so the check cannot be stale at commit
// time. A new rental (ID == 0) is inserted; an existing one is saved with its
// own row excluded from the check.
//
// Returns the conflicting rental and no error when admission is refused.
func (r *RentalRepository) SaveIfNoConflict(ctx context.Context, rental *domain.Rental, check func(existing []domain.Rental) (*domain.Rental, error)) (*domain.Rental, error) {
	var conflict *domain.Rental

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		camQuery := tx.Model(&cameraModel{})
		// SQLite has no FOR UPDATE; its single-writer transactions already
		// serialize admissions.
		if tx.Dialector.Name() == "postgres" {
			camQuery = camQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var cam cameraModel
		if err := camQuery.First(&cam, rental.CameraID).Error; err != nil {
			return err
		}

		q := tx.Where("camera_id = ? AND status = ?", rental.CameraID, string(domain.RentalActive))
		if rental.ID > 0 {
			q = q.Where("id <> ?", rental.ID)
		}
		var ms []rentalModel
		if err := q.Find(&ms).Error; err != nil {
			return err
		}

		c, err := check(toDomainRentals(ms))
		if err != nil {
			return err
		}
		if c != nil {
			conflict = c
			return nil
		}

		m := toRentalModel(rental)
		if rental.ID > 0 {
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		*rental = *toDomainRental(m)
		return nil
	})

	return conflict, err
}

func (r *RentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	m := toRentalModel(rental)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*rental = *toDomainRental(m)
	return nil
}

// MarkReturned completes the rental and records the actual return date.
func (r *RentalRepository) MarkReturned(ctx context.Context, id int64, returnDate string) error {
	return r.db.WithContext(ctx).Model(&rentalModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":             string(domain.RentalCompleted),
			"actual_return_date": returnDate,
		}).Error
}

func (r *RentalRepository) SetCalendarEventID(ctx context.Context, id int64, eventID *string) error {
	return r.db.WithContext(ctx).Model(&rentalModel{}).
		Where("id = ?", id).
		Update("calendar_event_id", eventID).Error
}

func (r *RentalRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&rentalModel{}, id).Error
}

// HasActiveForCamera reports whether the camera has any active rental.
func (r *RentalRepository) HasActiveForCamera(ctx context.Context, cameraID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&rentalModel{}).
		Where("camera_id = ? AND status = ?", cameraID, string(domain.RentalActive)).
		Count(&cnt).Error
	return cnt > 0, err
}

// HasActiveForCustomer reports whether the customer has any active rental.
func (r *RentalRepository) HasActiveForCustomer(ctx context.Context, customerID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&rentalModel{}).
		Where("customer_id = ? AND status = ?", customerID, string(domain.RentalActive)).
		Count(&cnt).Error
	return cnt > 0, err
}
