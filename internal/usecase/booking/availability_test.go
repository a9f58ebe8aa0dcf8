package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/barbeariadobeco/barbearia-api/internal/httperr"
)

func TestAvailability_UnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAvailability(repo)

	_, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Inexistente")
	if !httperr.IsBusiness(err, httperr.CodeInvalidService) {
		t.Fatalf("expected invalid_service, got %v", err)
	}
}

func TestAvailability_StoreOutageIsNotAClientError(t *testing.T) {
	repo := newFakeRepo()
	repo.serviceErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	uc := NewAvailability(repo)

	_, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Corte")
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

func TestAvailability_EmptyDayReturnsWholeGridForShortService(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 15, 50)
	uc := NewAvailability(repo)

	slots, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Corte")
	if err != nil {
		t.Fatal(err)
	}

	// A one-slot service fits every grid cell.
	if len(slots) != 45 {
		t.Fatalf("expected 45 free slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "20:00" {
		t.Fatalf("unexpected bounds: %s .. %s", slots[0], slots[len(slots)-1])
	}
}

func TestAvailability_LongServiceExcludedNearClosing(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Barba Completa", 45, 80)
	uc := NewAvailability(repo)

	slots, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Barba Completa")
	if err != nil {
		t.Fatal(err)
	}

	// 3-slot span: last viable start is 19:30 (19:30, 19:45, 20:00).
	if last := slots[len(slots)-1]; last != "19:30" {
		t.Fatalf("expected last start 19:30, got %s", last)
	}
	for _, s := range slots {
		if s == "19:45" || s == "20:00" {
			t.Fatalf("start %s would overflow the grid and must be excluded", s)
		}
	}
}

func TestAvailability_ExcludesCollidingStarts(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)

	createUC := NewCreate(repo, nil)
	_, err := createUC.Execute(context.Background(), CreateInput{
		ClientName: "João",
		Email:      "joao@example.com",
		Phone:      "11999990000",
		Barber:     "Carlos",
		Date:       "2026-09-01",
		Time:       "10:00",
		Service:    "Corte",
	})
	if err != nil {
		t.Fatal(err)
	}

	uc := NewAvailability(repo)
	slots, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Corte")
	if err != nil {
		t.Fatal(err)
	}

	free := make(map[string]bool, len(slots))
	for _, s := range slots {
		free[s] = true
	}

	// The booking holds 10:00 and 10:15. A 30-minute service starting at
	// 09:45 or 10:00 or 10:15 would touch a held slot.
	for _, blocked := range []string{"09:45", "10:00", "10:15"} {
		if free[blocked] {
			t.Errorf("start %s collides with the booking and must be excluded", blocked)
		}
	}
	if !free["09:30"] {
		t.Error("09:30 (09:30+09:45) does not collide and must be included")
	}
	if !free["10:30"] {
		t.Error("10:30 onward does not collide and must be included")
	}
}

func TestAvailability_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("Corte", 30, 50)
	repo.addService("Barba", 15, 30)

	createUC := NewCreate(repo, nil)
	if _, err := createUC.Execute(context.Background(), CreateInput{
		ClientName: "João",
		Email:      "joao@example.com",
		Phone:      "11999990000",
		Barber:     "Carlos",
		Date:       "2026-09-01",
		Time:       "14:00",
		Service:    "Corte",
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewAvailability(repo)

	first, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Corte")
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Execute(context.Background(), "Carlos", "2026-09-01", "Corte")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated calls with no intervening writes must match")
	}
}
