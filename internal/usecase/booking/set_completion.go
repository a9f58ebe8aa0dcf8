package booking

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/barbeariadobeco/barbearia-api/internal/audit"
	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
	"github.com/barbeariadobeco/barbearia-api/internal/models"
)

type SetCompletion struct {
	repo   schedule.Repository
	events EventSink
}

func NewSetCompletion(repo schedule.Repository, events EventSink) *SetCompletion {
	return &SetCompletion{
		repo:   repo,
		events: events,
	}
}

// Execute updates completion and payment as one atomic pair. Reopening a
// booking clears the payment no matter what was supplied, so a
// paid-but-not-completed row can never exist.
func (uc *SetCompletion) Execute(
	ctx context.Context,
	id uint,
	completed bool,
	payment string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	var pay *string
	if completed {
		payment = strings.TrimSpace(payment)
		if payment == "" || payment == models.PaymentNone {
			return nil, httperr.ErrBusiness(httperr.CodeMissingField)
		}
		if _, err := uc.repo.GetPaymentMethodByName(ctx, payment); err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidPayment)
		}
		pay = &payment
	}

	if err := uc.repo.UpdateCompletion(ctx, id, completed, pay); err != nil {
		return nil, err
	}

	b.Completed = completed
	b.Payment = pay

	action := "booking_reopened"
	if completed {
		action = "booking_completed"
	}
	if uc.events != nil {
		uc.events.Dispatch(audit.Event{
			Action:   action,
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}
