package schedule

// ClientRef attributes an occupied slot to the client who claimed it.
type ClientRef struct {
	Name  string `json:"nome"`
	Phone string `json:"telefone"`
}

// Occupancy is the set of occupied slots for one barber and date, with
// per-slot client attribution. When two bookings claim the same slot (a
// data-integrity violation the writer prevents) attribution is
// last-write-wins; the occupancy itself does not detect or repair it.
type Occupancy struct {
	Slots   map[string]struct{}
	Clients map[string]ClientRef
}

// Entry is one grid cell of the day view: the slot, whether it is taken,
// and who took it.
type Entry struct {
	Time     string `json:"hora"`
	Occupied bool   `json:"ocupado"`
	Name     string `json:"nome,omitempty"`
	Phone    string `json:"telefone,omitempty"`
}
