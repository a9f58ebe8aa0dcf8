package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
)

type Availability struct {
	repo schedule.Repository
}

func NewAvailability(repo schedule.Repository) *Availability {
	return &Availability{repo: repo}
}

// Execute returns, in grid order, every start time at which the requested
// service fits without touching an occupied or out-of-grid slot.
func (uc *Availability) Execute(
	ctx context.Context,
	barber string,
	date string,
	service string,
) ([]string, error) {

	svc, err := uc.repo.GetServiceByName(ctx, service)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
		}
		return nil, err
	}

	span := schedule.Span(svc.DurationMin)

	bookings, err := uc.repo.ListBookingsForDay(ctx, barber, date)
	if err != nil {
		return nil, err
	}
	occ := schedule.BuildOccupancy(bookings)

	gridSet := schedule.GridSet()

	free := []string{}
	for _, t := range schedule.Grid() {
		start, err := schedule.ParseSlot(t)
		if err != nil {
			continue
		}

		if !schedule.FitsGrid(start, span, gridSet) {
			continue
		}

		conflict := false
		for i := 0; i < span; i++ {
			cell := schedule.FormatSlot(start + i*schedule.SlotMinutes)
			if _, taken := occ.Slots[cell]; taken {
				conflict = true
				break
			}
		}

		if !conflict {
			free = append(free, t)
		}
	}

	return free, nil
}
