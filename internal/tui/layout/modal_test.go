package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		widthPercent  int
		want          int
	}{
		{"large terminal clamps to max", 200, 40, 72}, // 200*40% = 80 > max 72
		{"normal terminal", 120, 40, 48},              // 120*40% = 48
		{"small percent clamps to min", 120, 10, 44},  // 12 < min 44
		{"narrow terminal caps at width-4", 46, 40, 42},
		{"tiny terminal clamps to 1", 4, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, tt.widthPercent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.widthPercent, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name                 string
		maxVisible, selected int
		total                int
		wantStart, wantEnd   int
	}{
		{"all fit", 10, 0, 5, 0, 5},
		{"window at top", 5, 2, 20, 0, 5},
		{"window follows selection", 5, 10, 20, 6, 11},
		{"window at end", 5, 19, 20, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selected, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleListItems(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selected, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
