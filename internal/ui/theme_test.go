package ui

import (
	"strings"
	"testing"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent    float64
		wantFilled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{250, 10},
		{-10, 0},
	}
	for _, tc := range tests {
		got := Bar(tc.percent, 10)
		if n := strings.Count(got, "█"); n != tc.wantFilled {
			t.Errorf("Bar(%v) filled %d cells, want %d", tc.percent, n, tc.wantFilled)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 10 {
			t.Errorf("Bar(%v) has %d cells, want 10", tc.percent, n)
		}
	}
	if Bar(50, 0) != "" {
		t.Error("zero width bar should be empty")
	}
}
