package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// PeriodWindow is the inclusive time window one extraction run covers,
// together with the human-readable label passed to the labeling step.
type PeriodWindow struct {
	Type  types.PeriodType
	Label string
	Start time.Time
	End   time.Time
}

// PeriodWindowFor computes the window containing ref for the given period
// type, in UTC. Weeks are ISO weeks starting Monday; End is the last
// instant before the next window starts.
func PeriodWindowFor(pt types.PeriodType, ref time.Time) (*PeriodWindow, error) {
	ref = ref.UTC()

	var start, next time.Time
	var label string

	switch pt {
	case types.PeriodWeekly:
		// Roll back to Monday 00:00
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
		start = day.AddDate(0, 0, -(weekday - 1))
		next = start.AddDate(0, 0, 7)
		year, week := start.ISOWeek()
		label = fmt.Sprintf("%d-W%02d", year, week)

	case types.PeriodMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		next = start.AddDate(0, 1, 0)
		label = start.Format("2006-01")

	case types.PeriodQuarterly:
		quarter := (int(ref.Month()) - 1) / 3
		start = time.Date(ref.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
		next = start.AddDate(0, 3, 0)
		label = fmt.Sprintf("%d-Q%d", ref.Year(), quarter+1)

	case types.PeriodYearly:
		start = time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		next = start.AddDate(1, 0, 0)
		label = fmt.Sprintf("%d", ref.Year())

	default:
		return nil, goerr.New("invalid period type", goerr.V("periodType", pt))
	}

	return &PeriodWindow{
		Type:  pt,
		Label: label,
		Start: start,
		End:   next.Add(-time.Nanosecond),
	}, nil
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w *PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
