package schedule

import "testing"

func TestGrid_Shape(t *testing.T) {
	grid := Grid()

	if len(grid) != 45 {
		t.Fatalf("expected 45 slots, got %d", len(grid))
	}
	if grid[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", grid[0])
	}
	if grid[len(grid)-1] != "20:00" {
		t.Fatalf("expected last slot 20:00, got %s", grid[len(grid)-1])
	}

	for i := 1; i < len(grid); i++ {
		prev, err := ParseSlot(grid[i-1])
		if err != nil {
			t.Fatalf("unparseable slot %s: %v", grid[i-1], err)
		}
		cur, err := ParseSlot(grid[i])
		if err != nil {
			t.Fatalf("unparseable slot %s: %v", grid[i], err)
		}
		if cur != prev+SlotMinutes {
			t.Fatalf("grid not strictly increasing by %d at %s -> %s", SlotMinutes, grid[i-1], grid[i])
		}
	}
}

func TestGrid_Deterministic(t *testing.T) {
	a := Grid()
	b := Grid()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("grid differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"20:00", 1200, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:75", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		// strict wire format: no trailing text, no unpadded fields
		{"10:00xyz", 0, true},
		{"9:00", 0, true},
		{"09:5", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseSlot(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSlot(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSlot(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSlot(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatSlot_ZeroPadded(t *testing.T) {
	if got := FormatSlot(545); got != "09:05" {
		t.Fatalf("FormatSlot(545) = %s, want 09:05", got)
	}
	if got := FormatSlot(1200); got != "20:00" {
		t.Fatalf("FormatSlot(1200) = %s, want 20:00", got)
	}
}
