package schedule

import (
	"context"
	"time"

	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

// Repository is the persistence boundary of the scheduling engine. Usecases
// receive it injected, so tests run against in-memory fakes.
type Repository interface {
	// -------- Services --------
	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	// -------- Payment methods --------
	GetPaymentMethodByName(
		ctx context.Context,
		name string,
	) (*models.PaymentMethod, error)

	// -------- Bookings (read) --------
	ListBookingsForDay(
		ctx context.Context,
		barber string,
		date string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	// -------- Bookings (write) --------

	// CreateBooking persists the booking inside one transaction that holds a
	// per-(barber, date) advisory lock and re-checks slot overlap, so two
	// concurrent writers for the same slots cannot both commit.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateCompletion(
		ctx context.Context,
		id uint,
		completed bool,
		payment *string,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Aggregation --------

	// SumCompletedNetRevenue joins completed bookings with service price and
	// payment fee and returns the summed net amount.
	SumCompletedNetRevenue(
		ctx context.Context,
	) (float64, error)

	// MonthStats returns booking count and gross service revenue for the
	// month containing ref.
	MonthStats(
		ctx context.Context,
		ref time.Time,
	) (int64, float64, error)
}
