package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

func mustWindow(t *testing.T, pt types.PeriodType, ref time.Time) *model.PeriodWindow {
	t.Helper()
	w, err := model.PeriodWindowFor(pt, ref)
	gt.NoError(t, err)
	return w
}

func TestPeriodWindowFor(t *testing.T) {
	// Tuesday, 2026-09-01
	ref := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	t.Run("weekly starts on Monday", func(t *testing.T) {
		w := mustWindow(t, types.PeriodWeekly, ref)
		gt.Value(t, w.Start).Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.End).Equal(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
		gt.Value(t, w.Label).Equal("2026-W36")
	})

	t.Run("weekly on a Sunday rolls back six days", func(t *testing.T) {
		sunday := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)
		w := mustWindow(t, types.PeriodWeekly, sunday)
		gt.Value(t, w.Start).Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.Label).Equal("2026-W36")
	})

	t.Run("weekly label uses the ISO year of the week start", func(t *testing.T) {
		// 2026-01-01 is a Thursday inside ISO week 2026-W01
		w := mustWindow(t, types.PeriodWeekly, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.Label).Equal("2026-W01")
		gt.Value(t, w.Start).Equal(time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC))
	})

	t.Run("monthly", func(t *testing.T) {
		w := mustWindow(t, types.PeriodMonthly, ref)
		gt.Value(t, w.Start).Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.End).Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
		gt.Value(t, w.Label).Equal("2026-09")
	})

	t.Run("quarterly", func(t *testing.T) {
		w := mustWindow(t, types.PeriodQuarterly, ref)
		gt.Value(t, w.Start).Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.End).Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
		gt.Value(t, w.Label).Equal("2026-Q3")
	})

	t.Run("yearly", func(t *testing.T) {
		w := mustWindow(t, types.PeriodYearly, ref)
		gt.Value(t, w.Start).Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		gt.Value(t, w.End).Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
		gt.Value(t, w.Label).Equal("2026")
	})

	t.Run("normalizes the reference to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		// 2026-10-01 03:00 JST is still 2026-09-30 in UTC
		w := mustWindow(t, types.PeriodMonthly, time.Date(2026, 10, 1, 3, 0, 0, 0, jst))
		gt.Value(t, w.Label).Equal("2026-09")
	})

	t.Run("unknown period type", func(t *testing.T) {
		_, err := model.PeriodWindowFor(types.PeriodType("decade"), ref)
		gt.Error(t, err)
	})
}

func TestPeriodWindowContains(t *testing.T) {
	w := mustWindow(t, types.PeriodMonthly, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	gt.Bool(t, w.Contains(w.Start)).True()
	gt.Bool(t, w.Contains(w.End)).True()
	gt.Bool(t, w.Contains(w.Start.Add(-time.Nanosecond))).False()
	gt.Bool(t, w.Contains(w.End.Add(time.Nanosecond))).False()
}
