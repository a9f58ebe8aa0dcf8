package schedule

// Span is the number of consecutive slots a service duration consumes.
// Durations that are not multiples of the slot size round up.
func Span(durationMin int) int {
	if durationMin <= 0 {
		return 0
	}
	return (durationMin + SlotMinutes - 1) / SlotMinutes
}

// SlotsFrom derives the span consecutive slot strings starting at the given
// minute-of-day. Minute arithmetic, so hour boundaries roll correctly
// (a 45-minute service at 19:45 yields 19:45, 20:00, 20:15).
func SlotsFrom(startMinute, span int) []string {
	slots := make([]string, 0, span)
	for i := 0; i < span; i++ {
		slots = append(slots, FormatSlot(startMinute+i*SlotMinutes))
	}
	return slots
}

// FitsGrid reports whether every one of the span slots starting at
// startMinute is a member of the business-day grid. This is the de facto
// closing-time rule: a service must finish inside the generated grid.
func FitsGrid(startMinute, span int, grid map[string]struct{}) bool {
	for i := 0; i < span; i++ {
		if _, ok := grid[FormatSlot(startMinute+i*SlotMinutes)]; !ok {
			return false
		}
	}
	return true
}
