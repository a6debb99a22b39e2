package ass

import "fmt"

// centiseconds rounds seconds half-up to the format's minimum time unit.
func centiseconds(seconds float64) int64 {
	if seconds < 0 {
		return 0
	}
	return int64(seconds*100 + 0.5)
}

// FormatTimestamp renders seconds in ASS time form H:MM:SS.CC.
func FormatTimestamp(seconds float64) string {
	return formatCentiseconds(centiseconds(seconds))
}

func formatCentiseconds(cs int64) string {
	h := cs / 360000
	cs -= h * 360000
	m := cs / 6000
	cs -= m * 6000
	s := cs / 100
	cs -= s * 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// eventInterval rounds an event's bounds to centiseconds and guarantees the
// rounded interval has positive width. A zero-duration cue is fatal for the
// renderer, so a collapsed interval extends the end by one centisecond.
func eventInterval(start, end float64) (string, string) {
	startCS := centiseconds(start)
	endCS := centiseconds(end)
	if endCS <= startCS {
		endCS = startCS + 1
	}
	return formatCentiseconds(startCS), formatCentiseconds(endCS)
}
