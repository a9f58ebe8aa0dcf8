package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/audit"
	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type Delete struct {
	repo   schedule.Repository
	events EventSink
}

func NewDelete(repo schedule.Repository, events EventSink) *Delete {
	return &Delete{
		repo:   repo,
		events: events,
	}
}

// Execute removes the booking and returns the deleted row so callers can
// invalidate derived views for its barber and date.
func (uc *Delete) Execute(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if err := uc.repo.DeleteBooking(ctx, id); err != nil {
		return nil, err
	}

	if uc.events != nil {
		uc.events.Dispatch(audit.Event{
			Action:   "booking_deleted",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"barbeiro": b.Barber,
				"data":     b.Date,
			},
		})
	}

	return b, nil
}
