package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("nome = ?", name).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Payment methods
// --------------------------------------------------

func (r *BookingGormRepository) GetPaymentMethodByName(
	ctx context.Context,
	name string,
) (*models.PaymentMethod, error) {

	var pm models.PaymentMethod
	if err := r.db.WithContext(ctx).
		Where("nome = ?", name).
		First(&pm).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

// --------------------------------------------------
// Bookings (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barber string,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barbeiro = ? AND data = ?", barber, date).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("data ASC, id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Bookings (write)
// --------------------------------------------------

// CreateBooking serializes writers for the same barber and day with a
// transaction-scoped advisory lock, then re-checks slot overlap before
// inserting. Two concurrent requests for overlapping slots cannot both
// commit: the second writer waits on the lock and then sees the first
// writer's row in the overlap check.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		lockKey := b.Barber + "|" + b.Date
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			lockKey,
		).Error; err != nil {
			return err
		}

		var existing []models.Booking
		if err := tx.
			Where("barbeiro = ? AND data = ?", b.Barber, b.Date).
			Find(&existing).Error; err != nil {
			return err
		}

		occ := schedule.BuildOccupancy(existing)
		for _, slot := range b.Slots {
			if _, taken := occ.Slots[slot]; taken {
				return httperr.ErrBusiness(httperr.CodeTimeConflict)
			}
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) UpdateCompletion(
	ctx context.Context,
	id uint,
	completed bool,
	payment *string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"concluido": completed,
			"pagamento": payment,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Aggregation
// --------------------------------------------------

func (r *BookingGormRepository) SumCompletedNetRevenue(
	ctx context.Context,
) (float64, error) {

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(s.valor * (1 - f.taxa / 100)), 0)
		FROM agendamentos a
		JOIN servicos s ON a.servico = s.nome
		JOIN formas_pagamento f ON a.pagamento = f.nome
		WHERE a.concluido = true
	`).Scan(&total).Error

	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookingGormRepository) MonthStats(
	ctx context.Context,
	ref time.Time,
) (int64, float64, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", ref.Year(), int(ref.Month()))

	var row struct {
		Total   int64
		Revenue float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total, COALESCE(SUM(s.valor), 0) AS revenue
		FROM agendamentos a
		JOIN servicos s ON a.servico = s.nome
		WHERE a.data LIKE ?
	`, prefix).Scan(&row).Error

	if err != nil {
		return 0, 0, err
	}
	return row.Total, row.Revenue, nil
}

// Compile-time check
var _ schedule.Repository = (*BookingGormRepository)(nil)
