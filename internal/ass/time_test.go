package ass

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00.00"},
		{1.5, "0:00:01.50"},
		{61.239, "0:01:01.24"},  // half-up: .239 rounds to .24
		{61.2349, "0:01:01.23"}, // .2349 rounds down
		{3600, "1:00:00.00"},
		{-2, "0:00:00.00"},
		{7326.0, "2:02:06.00"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestEventIntervalKeepsPositiveWidth(t *testing.T) {
	start, end := eventInterval(1.0, 1.001)
	if start != "0:00:01.00" {
		t.Fatalf("start = %q", start)
	}
	// Rounding collapsed the interval; end extends one centisecond.
	if end != "0:00:01.01" {
		t.Fatalf("end = %q, want 0:00:01.01", end)
	}
}

func TestEventIntervalUnchangedWhenWide(t *testing.T) {
	start, end := eventInterval(2.0, 4.5)
	if start != "0:00:02.00" || end != "0:00:04.50" {
		t.Fatalf("interval = [%q,%q]", start, end)
	}
}
