package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/audit"
	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
	"github.com/barbeariadobeco/barbearia-api/internal/validators"
)

// EventSink receives booking lifecycle events. Satisfied by
// *audit.Dispatcher; tests plug a recorder.
type EventSink interface {
	Dispatch(ev audit.Event)
}

type CreateInput struct {
	ClientName string
	Email      string
	Phone      string
	Barber     string
	Date       string
	Time       string
	Service    string
}

type Create struct {
	repo   schedule.Repository
	events EventSink
}

func NewCreate(repo schedule.Repository, events EventSink) *Create {
	return &Create{
		repo:   repo,
		events: events,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	// All seven fields are required, before any persistence access.
	for _, v := range []string{
		in.ClientName, in.Email, in.Phone,
		in.Barber, in.Date, in.Time, in.Service,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, httperr.ErrBusiness(httperr.CodeMissingField)
		}
	}

	if !validators.IsEmail(in.Email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidEmail)
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	svc, err := uc.repo.GetServiceByName(ctx, in.Service)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
		}
		return nil, err
	}

	start, err := schedule.ParseSlot(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSlotOutOfGrid)
	}

	// Every derived slot must be a grid cell. The read side already excludes
	// out-of-horizon starts; enforcing it here too closes the write path for
	// clients that skip the availability check.
	span := schedule.Span(svc.DurationMin)
	if !schedule.FitsGrid(start, span, schedule.GridSet()) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotOutOfGrid)
	}

	b := &models.Booking{
		ClientName: in.ClientName,
		Email:      in.Email,
		Phone:      in.Phone,
		Barber:     in.Barber,
		Date:       in.Date,
		Slots:      schedule.SlotsFrom(start, span),
		Service:    svc.Name,
		Completed:  false,
		Payment:    nil,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.events != nil {
		uc.events.Dispatch(audit.Event{
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
			Metadata: map[string]any{
				"barbeiro": b.Barber,
				"data":     b.Date,
				"horarios": b.Slots,
			},
		})
	}

	return b, nil
}
