package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/audit"
	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

// fakeRepo is an in-memory schedule.Repository. Its CreateBooking applies
// the same overlap rule as the real repository so round-trip tests exercise
// the writer contract.
type fakeRepo struct {
	services map[string]models.Service
	payments map[string]models.PaymentMethod
	bookings []models.Booking
	nextID   uint

	// when set, lookups fail with this error instead of consulting the maps,
	// simulating a store outage
	serviceErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: make(map[string]models.Service),
		payments: make(map[string]models.PaymentMethod),
		nextID:   1,
	}
}

func (f *fakeRepo) addService(name string, durationMin int, price float64) {
	f.services[name] = models.Service{
		ID:          uint(len(f.services) + 1),
		Name:        name,
		DurationMin: durationMin,
		Price:       price,
	}
}

func (f *fakeRepo) addPayment(name string, fee float64) {
	f.payments[name] = models.PaymentMethod{
		ID:         uint(len(f.payments) + 1),
		Name:       name,
		FeePercent: fee,
	}
}

func (f *fakeRepo) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	if svc, ok := f.services[name]; ok {
		return &svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetPaymentMethodByName(_ context.Context, name string) (*models.PaymentMethod, error) {
	if pm, ok := f.payments[name]; ok {
		return &pm, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookingsForDay(_ context.Context, barber, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Barber == barber && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	var sameDay []models.Booking
	for _, other := range f.bookings {
		if other.Barber == b.Barber && other.Date == b.Date {
			sameDay = append(sameDay, other)
		}
	}

	occ := schedule.BuildOccupancy(sameDay)
	for _, slot := range b.Slots {
		if _, taken := occ.Slots[slot]; taken {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}

	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) UpdateCompletion(_ context.Context, id uint, completed bool, payment *string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Completed = completed
			f.bookings[i].Payment = payment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) SumCompletedNetRevenue(_ context.Context) (float64, error) {
	var total float64
	for _, b := range f.bookings {
		if !b.Completed || b.Payment == nil {
			continue
		}
		svc, ok := f.services[b.Service]
		if !ok {
			continue
		}
		pm, ok := f.payments[*b.Payment]
		if !ok {
			continue
		}
		total += svc.Price * (1 - pm.FeePercent/100)
	}
	return total, nil
}

func (f *fakeRepo) MonthStats(_ context.Context, ref time.Time) (int64, float64, error) {
	prefix := fmt.Sprintf("%04d-%02d-", ref.Year(), int(ref.Month()))

	var count int64
	var gross float64
	for _, b := range f.bookings {
		if !strings.HasPrefix(b.Date, prefix) {
			continue
		}
		count++
		if svc, ok := f.services[b.Service]; ok {
			gross += svc.Price
		}
	}
	return count, gross, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// eventRecorder captures dispatched events without a database.
type eventRecorder struct {
	events []audit.Event
}

func (r *eventRecorder) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}
