package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
)

func validInput() CreateInput {
	return CreateInput{
		ClientName: "João",
		Email:      "joao@example.com",
		Phone:      "11999990000",
		Barber:     "Carlos",
		Date:       "2026-09-01",
		Time:       "10:00",
		Service:    "Corte",
	}
}

func TestCreate_MissingFieldsRejectedBeforePersistence(t *testing.T) {
	repo := newFakeRepo()
	// deliberately no services registered: a missing-field failure must not
	// reach the repository at all
	uc := NewCreate(repo, nil)

	blank := func(mutate func(*CreateInput)) CreateInput {
		in := validInput()
		mutate(&in)
		return in
	}

	cases := []CreateInput{
		blank(func(in *CreateInput) { in.ClientName = "" }),
		blank(func(in *CreateInput) { in.Email = "  " }),
		blank(func(in *CreateInput) { in.Phone = "" }),
		blank(func(in *CreateInput) { in.Barber = "" }),
		blank(func(in *CreateInput) { in.Date = "" }),
		blank(func(in *CreateInput) { in.Time = "" }),
		blank(func(in *CreateInput) { in.Service = "" }),
	}

	for i, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, httperr.CodeMissingField) {
			t.Errorf("case %d: expected missing_field, got %v", i, err)
		}
	}
}

func TestCreate_InvalidService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeInvalidService) {
		t.Fatalf("expected invalid_service, got %v", err)
	}
}

func TestCreate_StoreOutageIsNotAClientError(t *testing.T) {
	repo := newFakeRepo()
	repo.serviceErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	uc := NewCreate(repo, nil)

	_, err := uc.Execute(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected an error")
	}
	if httperr.IsBusiness(err, httperr.CodeInvalidService) {
		t.Fatalf("store outage must not surface as invalid_service: %v", err)
	}
	if !errors.Is(err, repo.serviceErr) {
		t.Fatalf("expected the repository error to propagate, got %v", err)
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)
	uc := NewCreate(repo, nil)

	in := validInput()
	in.Email = "not-an-email"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeInvalidEmail) {
		t.Fatalf("expected invalid_email, got %v", err)
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)

	events := &eventRecorder{}
	uc := NewCreate(repo, events)

	b, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	if b.ID == 0 {
		t.Fatal("expected a generated id")
	}
	want := []string{"10:00", "10:15"}
	if !reflect.DeepEqual([]string(b.Slots), want) {
		t.Fatalf("slots = %v, want %v", b.Slots, want)
	}
	if b.Completed {
		t.Fatal("new booking must not be completed")
	}
	if b.Payment != nil {
		t.Fatal("new booking must have no payment")
	}

	// feeding the written slots back through the occupancy read marks them
	day, err := repo.ListBookingsForDay(context.Background(), "Carlos", "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(day) != 1 || len(day[0].Slots) != 2 {
		t.Fatalf("unexpected day bookings: %+v", day)
	}

	if len(events.events) != 1 || events.events[0].Action != "booking_created" {
		t.Fatalf("expected one booking_created event, got %+v", events.events)
	}
}

func TestCreate_RejectsOutOfGridStart(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Barba Completa", 45, 80)
	uc := NewCreate(repo, nil)

	// 19:45 + 3 slots would need 20:15, which is past the last grid cell.
	in := validInput()
	in.Service = "Barba Completa"
	in.Time = "19:45"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeSlotOutOfGrid) {
		t.Fatalf("expected slot_out_of_grid, got %v", err)
	}

	// 19:30 still fits (19:30, 19:45, 20:00).
	in.Time = "19:30"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("19:30 should be accepted: %v", err)
	}
}

func TestCreate_RejectsUnparseableTimeAndDate(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)
	uc := NewCreate(repo, nil)

	in := validInput()
	in.Time = "quinze horas"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeSlotOutOfGrid) {
		t.Fatalf("expected slot_out_of_grid for bad time, got %v", err)
	}

	in = validInput()
	in.Date = "01/09/2026"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeInvalidDate) {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestCreate_ConflictingWritesOnlyOneSucceeds(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)
	uc := NewCreate(repo, nil)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	// same barber, date and an overlapping start
	in := validInput()
	in.ClientName = "Pedro"
	in.Time = "10:15"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict, got %v", err)
	}

	all, _ := repo.ListBookings(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected exactly one persisted booking, got %d", len(all))
	}
}

func TestCreate_SameSlotDifferentBarberIsFine(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)
	uc := NewCreate(repo, nil)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	in := validInput()
	in.Barber = "Rafael"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("different barber must not conflict: %v", err)
	}
}
