package schedule

import (
	"time"

	"github.com/gobarber/gobarber-client/internal/models"
)

// noon splits the schedule into morning and afternoon.
const noon = 12

// DisabledDays returns the days of month that cannot be booked: every
// Saturday and Sunday plus every day the provider reported as unavailable.
// The result is sorted and has no duplicates. Items outside the month are
// ignored.
func DisabledDays(month time.Time, items []models.MonthAvailabilityItem) []time.Time {
	first := startOfMonth(month)
	last := daysIn(first)

	unavailable := make(map[int]bool, len(items))
	for _, item := range items {
		if !item.Available && item.Day >= 1 && item.Day <= last {
			unavailable[item.Day] = true
		}
	}

	var days []time.Time
	for d := 1; d <= last; d++ {
		day := first.AddDate(0, 0, d-1)
		if isWeekend(day) || unavailable[d] {
			days = append(days, day)
		}
	}
	return days
}

// SplitByPeriod partitions appointments by the hour of their date in loc.
// Received order is kept in both halves.
func SplitByPeriod(appointments []models.Appointment, loc *time.Location) (morning, afternoon []models.Appointment) {
	for _, a := range appointments {
		if a.Date.In(loc).Hour() < noon {
			morning = append(morning, a)
		} else {
			afternoon = append(afternoon, a)
		}
	}
	return morning, afternoon
}

// NextAppointment returns the first appointment, in received order, strictly
// after now.
func NextAppointment(appointments []models.Appointment, now time.Time) (models.Appointment, bool) {
	for _, a := range appointments {
		if a.Date.After(now) {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// withHours returns a copy of appointments with HourFormatted filled in.
func withHours(appointments []models.Appointment, loc *time.Location) []models.Appointment {
	out := make([]models.Appointment, len(appointments))
	for i, a := range appointments {
		a.HourFormatted = a.Date.In(loc).Format(models.HourFormat)
		out[i] = a
	}
	return out
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysIn(month time.Time) int {
	return startOfMonth(month).AddDate(0, 1, -1).Day()
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
