package schedule

import "github.com/barbeariadobeco/barbearia-api/internal/models"

// BuildOccupancy unions the decoded slot lists of every booking for one
// barber and date. Bookings count regardless of completion status: a
// completed booking still occupied its slots that day.
func BuildOccupancy(bookings []models.Booking) Occupancy {
	occ := Occupancy{
		Slots:   make(map[string]struct{}),
		Clients: make(map[string]ClientRef),
	}
	for _, b := range bookings {
		for _, slot := range b.Slots {
			occ.Slots[slot] = struct{}{}
			occ.Clients[slot] = ClientRef{Name: b.ClientName, Phone: b.Phone}
		}
	}
	return occ
}
