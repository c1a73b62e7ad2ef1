// Package stats aggregates recorded intervals into the weekly per-focus,
// per-day breakdown shown in reports
package stats

import (
	"math"
	"time"

	"github.com/ayoisaiah/tracker/internal/models"
	"github.com/ayoisaiah/tracker/internal/timeutil"
)

const daysInAWeek = 7

// ScaleStep is the multiple that the chart's vertical bound is rounded up
// to.
const ScaleStep = 15.0

// DayLabels are the single letter day labels, Monday first.
var DayLabels = [daysInAWeek]string{"M", "T", "W", "R", "F", "S", "U"}

// Row is the number of minutes tracked for one focus on one day.
type Row struct {
	Day     string  `json:"day"`
	Name    string  `json:"name"`
	Minutes float64 `json:"minutes"`
}

// Series holds the daily minutes for a single focus, Monday first.
type Series struct {
	FocusID string               `json:"id,omitempty"`
	Name    string               `json:"name"`
	Minutes [daysInAWeek]float64 `json:"minutes"`
}

// Total returns the minutes tracked across the week.
func (s Series) Total() float64 {
	var total float64
	for _, m := range s.Minutes {
		total += m
	}

	return total
}

// Week is the breakdown for the Monday to Sunday week containing a
// reference date.
type Week struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Series []Series  `json:"series"`
	Rows   []Row     `json:"rows"`
	// Scale is the upper bound for the chart's vertical axis
	Scale float64 `json:"scale"`
	// Placeholder is set when no focus was selected and Rows holds a single
	// unnamed all-zero series
	Placeholder bool `json:"placeholder"`
}

// WeekStart returns local midnight of the most recent Monday at or before
// ref.
func WeekStart(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % daysInAWeek
	y, m, d := ref.Date()

	return timeutil.StartOfDay(y, m, d-offset, ref.Location())
}

// NextWeek shifts ref forward by seven days.
func NextWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, daysInAWeek)
}

// PreviousWeek shifts ref back by seven days.
func PreviousWeek(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -daysInAWeek)
}

// Weekly computes the breakdown for the week containing ref. Only focuses
// marked for the report are included, in the order given. An interval
// counts towards the day it started on.
func Weekly(focuses []*models.Focus, ref time.Time) Week {
	start := WeekStart(ref)
	y, m, d := start.Date()

	w := Week{
		Start: start,
		End:   timeutil.StartOfDay(y, m, d+daysInAWeek, start.Location()),
	}

	for _, f := range focuses {
		if !f.IsSelected {
			continue
		}

		w.Series = append(w.Series, w.bin(f))
	}

	if len(w.Series) == 0 {
		w.Series = []Series{{}}
		w.Placeholder = true
	}

	w.Rows = make([]Row, 0, daysInAWeek*len(w.Series))

	for day := 0; day < daysInAWeek; day++ {
		for _, s := range w.Series {
			w.Rows = append(w.Rows, Row{
				Day:     DayLabels[day],
				Name:    s.Name,
				Minutes: s.Minutes[day],
			})
		}
	}

	w.Scale = scaleFor(w.Rows)

	return w
}

func (w Week) bin(f *models.Focus) Series {
	s := Series{
		FocusID: f.ID,
		Name:    f.Name,
	}

	for _, t := range f.Times {
		started := t.StartTime().In(w.Start.Location())

		if started.Before(w.Start) || !started.Before(w.End) {
			continue
		}

		day := min(max(timeutil.DaysBetween(w.Start, started), 0), daysInAWeek-1)

		s.Minutes[day] += t.Minutes()
	}

	return s
}

// DayTotals returns the minutes tracked on each day across all series.
func (w Week) DayTotals() [daysInAWeek]float64 {
	var totals [daysInAWeek]float64

	for _, s := range w.Series {
		for i, m := range s.Minutes {
			totals[i] += m
		}
	}

	return totals
}

// Total returns the minutes tracked across all series.
func (w Week) Total() float64 {
	var total float64
	for _, s := range w.Series {
		total += s.Total()
	}

	return total
}

// scaleFor rounds the largest bin up to the next multiple of ScaleStep.
func scaleFor(rows []Row) float64 {
	var largest float64
	for _, r := range rows {
		largest = max(largest, r.Minutes)
	}

	if largest <= 0 {
		return ScaleStep
	}

	return math.Ceil(largest/ScaleStep) * ScaleStep
}
