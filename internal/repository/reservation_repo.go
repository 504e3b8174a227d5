package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"pricna/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	Date          string     `gorm:"column:date;index"`
	TimeSlots     string     `gorm:"column:time_slots"`
	DurationHours int        `gorm:"column:duration_hours"`
	TotalPrice    int        `gorm:"column:total_price"`
	Name          string     `gorm:"column:name"`
	Email         string     `gorm:"column:email"`
	Phone         string     `gorm:"column:phone"`
	Company       *string    `gorm:"column:company"`
	Message       *string    `gorm:"column:message"`
	Status        string     `gorm:"column:status;index"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

// reservationSlotModel holds one row per booked slot of an active
// reservation. The unique index over (date, slot) is what makes concurrent
// check-then-insert submissions safe: the loser of the race gets a
// constraint violation instead of a silent double-booking. Cancelled and
// deleted reservations have no rows here, which frees their slots.
type reservationSlotModel struct {
	ID            int64  `gorm:"column:id;primaryKey"`
	ReservationID int64  `gorm:"column:reservation_id;index"`
	Date          string `gorm:"column:date;uniqueIndex:idx_no_double_booking"`
	Slot          string `gorm:"column:slot;uniqueIndex:idx_no_double_booking"`
}

func (reservationSlotModel) TableName() string { return "reservation_slots" }

func ReservationModels() []any {
	return []any{&reservationModel{}, &reservationSlotModel{}}
}

func toDomainReservation(m reservationModel) (*domain.Reservation, error) {
	var slots []string
	if err := json.Unmarshal([]byte(m.TimeSlots), &slots); err != nil {
		return nil, err
	}

	var company, message string
	if m.Company != nil {
		company = *m.Company
	}
	if m.Message != nil {
		message = *m.Message
	}

	return &domain.Reservation{
		ID:            m.ID,
		Date:          m.Date,
		TimeSlots:     slots,
		DurationHours: m.DurationHours,
		TotalPrice:    m.TotalPrice,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Company:       company,
		Message:       message,
		Status:        domain.ReservationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}, nil
}

func toReservationModel(r *domain.Reservation) (reservationModel, error) {
	slots, err := json.Marshal(r.TimeSlots)
	if err != nil {
		return reservationModel{}, err
	}

	var company, message *string
	if r.Company != "" {
		v := r.Company
		company = &v
	}
	if r.Message != "" {
		v := r.Message
		message = &v
	}

	return reservationModel{
		ID:            r.ID,
		Date:          r.Date,
		TimeSlots:     string(slots),
		DurationHours: r.DurationHours,
		TotalPrice:    r.TotalPrice,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Company:       company,
		Message:       message,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		CancelledAt:   r.CancelledAt,
	}, nil
}

func slotRows(r *domain.Reservation) []reservationSlotModel {
	rows := make([]reservationSlotModel, 0, len(r.TimeSlots))
	for _, s := range r.TimeSlots {
		rows = append(rows, reservationSlotModel{
			ReservationID: r.ID,
			Date:          r.Date,
			Slot:          s,
		})
	}
	return rows
}

// Create inserts the reservation and its slot rows in one transaction.
// Returns ErrDuplicateSlot when another active reservation already holds one
// of the slots.
func (repo *ReservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	m, err := toReservationModel(r)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		r.ID = m.ID
		if rows := slotRows(r); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return err
	}

	out, err := toDomainReservation(m)
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

func (repo *ReservationRepository) GetAll(ctx context.Context) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := repo.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainList(models)
}

func (repo *ReservationRepository) GetByDate(ctx context.Context, date string, activeOnly bool) ([]domain.Reservation, error) {
	q := repo.db.WithContext(ctx).Where("date = ?", date)
	if activeOnly {
		q = q.Where("status <> ?", string(domain.ReservationCancelled))
	}

	var models []reservationModel
	if err := q.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainList(models)
}

func (repo *ReservationRepository) GetByRange(ctx context.Context, start, end string) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := repo.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Where("status <> ?", string(domain.ReservationCancelled)).
		Order("date ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainList(models)
}

func (repo *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := repo.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainReservation(m)
}

// Update saves the full record and rebuilds its slot rows, all in one
// transaction so a slot change cannot transiently double-book.
func (repo *ReservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	m, err := toReservationModel(r)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now()

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", r.ID).Delete(&reservationSlotModel{}).Error; err != nil {
			return err
		}
		if r.IsActive() {
			if rows := slotRows(r); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return err
	}

	r.UpdatedAt = m.UpdatedAt
	return nil
}

// Cancel flips the status and drops the slot rows, freeing the slots.
func (repo *ReservationRepository) Cancel(ctx context.Context, id int64, at time.Time) (bool, error) {
	var affected int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&reservationModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":       string(domain.ReservationCancelled),
				"cancelled_at": at,
				"updated_at":   at,
			})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Where("reservation_id = ?", id).Delete(&reservationSlotModel{}).Error
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (repo *ReservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", id).Delete(&reservationSlotModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&reservationModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func toDomainList(models []reservationModel) ([]domain.Reservation, error) {
	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		r, err := toDomainReservation(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}
