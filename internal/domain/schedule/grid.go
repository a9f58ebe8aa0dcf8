package schedule

import "fmt"

// Business-day grid constants. The shop takes bookings from 09:00 up to and
// including a last start of 20:00, in 15-minute slots.
const (
	OpeningHour = 9
	ClosingHour = 20
	SlotMinutes = 15
)

// Grid returns the ordered sequence of valid slot start times for one
// business day: "09:00" through "20:00" at 15-minute steps, 45 entries.
// It is a pure function of the constants above and is regenerated per call.
func Grid() []string {
	var grid []string
	for m := OpeningHour * 60; m <= ClosingHour*60; m += SlotMinutes {
		grid = append(grid, FormatSlot(m))
	}
	return grid
}

// GridSet returns the grid as a membership set.
func GridSet() map[string]struct{} {
	set := make(map[string]struct{})
	for m := OpeningHour * 60; m <= ClosingHour*60; m += SlotMinutes {
		set[FormatSlot(m)] = struct{}{}
	}
	return set
}

// FormatSlot renders a minute-of-day as a zero-padded HH:MM string.
func FormatSlot(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// ParseSlot converts a zero-padded HH:MM string to its minute-of-day.
// Anything that does not round-trip through FormatSlot is rejected, so
// unpadded forms and trailing text never parse.
func ParseSlot(hm string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(hm, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	m := hour*60 + minute
	if FormatSlot(m) != hm {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return m, nil
}
