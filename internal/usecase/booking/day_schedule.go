package booking

import (
	"context"

	"github.com/barbeariadobeco/barbearia-api/internal/domain/schedule"
)

type DaySchedule struct {
	repo schedule.Repository
}

func NewDaySchedule(repo schedule.Repository) *DaySchedule {
	return &DaySchedule{repo: repo}
}

// Execute annotates every grid cell of the day with its occupancy and, for
// taken slots, the client who claimed it. Independent of any service
// duration.
func (uc *DaySchedule) Execute(
	ctx context.Context,
	barber string,
	date string,
) ([]schedule.Entry, error) {

	bookings, err := uc.repo.ListBookingsForDay(ctx, barber, date)
	if err != nil {
		return nil, err
	}
	occ := schedule.BuildOccupancy(bookings)

	grid := schedule.Grid()
	entries := make([]schedule.Entry, 0, len(grid))
	for _, t := range grid {
		entry := schedule.Entry{Time: t}
		if _, taken := occ.Slots[t]; taken {
			client := occ.Clients[t]
			entry.Occupied = true
			entry.Name = client.Name
			entry.Phone = client.Phone
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
