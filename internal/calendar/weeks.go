// Package calendar partitions a month into Sunday-start week buckets used by
// the booking calendar drill-down (month → week → day).
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned for an out-of-range month or an inverted date range
var ErrInvalidArgument = errors.New("calendar: invalid argument")

const (
	// WeeksPerMonth is the number of week buckets returned for every month
	WeeksPerMonth = 4

	// maxScannedWeeks bounds the scan; no month overlaps more than 6 Sunday-start weeks
	maxScannedWeeks = 6

	daysPerWeek = 7
)

// Week is a Sunday-to-Saturday span overlapping a month.
// Start and End are not clipped to the month boundaries.
type Week struct {
	Number int
	Start  time.Time
	End    time.Time
}

// Contains reports whether the given date falls inside the week
func (w Week) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// WeeksInMonth returns the first four Sunday-start weeks overlapping the month.
// The 5th and 6th weeks of longer months are dropped.
func WeeksInMonth(year, month int) ([]Week, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d is out of range 1-12", ErrInvalidArgument, month)
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	weeks := make([]Week, 0, maxScannedWeeks)
	cursor := StartOfWeek(firstDay)

	// Every month has at least 28 days, so by the time the cursor leaves
	// the month at least WeeksPerMonth weeks have been collected
	for len(weeks) < maxScannedWeeks && !cursor.After(lastDay) {
		weekStart := StartOfWeek(cursor)
		weekEnd := EndOfWeek(cursor)

		if !weekEnd.Before(firstDay) && !weekStart.After(lastDay) {
			weeks = append(weeks, Week{
				Number: len(weeks) + 1,
				Start:  weekStart,
				End:    weekEnd,
			})
		}

		cursor = weekEnd.AddDate(0, 0, 1)
	}

	if len(weeks) > WeeksPerMonth {
		weeks = weeks[:WeeksPerMonth]
	}

	return weeks, nil
}

// WeekByNumber returns the week with the given 1-based number within the month
func WeekByNumber(year, month, number int) (Week, error) {
	weeks, err := WeeksInMonth(year, month)
	if err != nil {
		return Week{}, err
	}

	if number < 1 || number > len(weeks) {
		return Week{}, fmt.Errorf("%w: week %d is out of range 1-%d", ErrInvalidArgument, number, len(weeks))
	}

	return weeks[number-1], nil
}

// DaysInWeek expands [start, end] into one date per day, inclusive and ascending
func DaysInWeek(start, end time.Time) ([]time.Time, error) {
	from := DateOf(start)
	to := DateOf(end)

	if from.After(to) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidArgument, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	days := make([]time.Time, 0, daysPerWeek)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days, nil
}

// StartOfWeek returns the Sunday on or before the date
func StartOfWeek(date time.Time) time.Time {
	d := DateOf(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// EndOfWeek returns the Saturday on or after the date
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, daysPerWeek-1)
}

// DateOf drops the clock and location, keeping the calendar date as midnight UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
