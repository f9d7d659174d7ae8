package clean

import (
	"time"

	"github.com/truenorthdata/newsdash/internal/config"
)

// Window is the contiguous recency interval [Start, End] within which
// articles are retained. Both bounds are inclusive; the zero Window is
// unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	return w.End.IsZero() || !t.After(w.End)
}

// WindowFor builds the configured recency window ending at now: either
// year-to-date from Jan 1, or a trailing number of days.
func WindowFor(cfg config.WindowConfig, now time.Time) Window {
	switch cfg.Mode {
	case config.WindowTrailing:
		return Window{Start: now.AddDate(0, 0, -cfg.Days), End: now}
	default:
		return Window{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	}
}
