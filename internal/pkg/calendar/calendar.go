// Package calendar decides whether the office is open on a given date.
// The office is closed on weekends and on Czech public holidays, including
// the two Easter-derived moving holidays.
package calendar

import "time"

// EasterSunday computes Easter Sunday for a year using the anonymous
// Gregorian (Gaussian) algorithm. Valid for years 1583-9999.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Holidays returns all Czech public holidays of a year: nine fixed dates
// (Dec 24-26 counting as three) plus Good Friday and Easter Monday.
func Holidays(year int) []time.Time {
	fixed := []struct {
		month time.Month
		day   int
	}{
		{time.January, 1},   // Nový rok
		{time.May, 1},       // Svátek práce
		{time.May, 8},       // Den vítězství
		{time.July, 5},      // Cyril a Metoděj
		{time.July, 6},      // Jan Hus
		{time.September, 28}, // Den české státnosti
		{time.October, 28},  // Den vzniku Československa
		{time.November, 17}, // Den boje za svobodu a demokracii
		{time.December, 24}, // Štědrý den
		{time.December, 25}, // 1. svátek vánoční
		{time.December, 26}, // 2. svátek vánoční
	}

	out := make([]time.Time, 0, len(fixed)+2)
	for _, f := range fixed {
		out = append(out, time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC))
	}

	easter := EasterSunday(year)
	out = append(out, easter.AddDate(0, 0, -2)) // Velký pátek
	out = append(out, easter.AddDate(0, 0, 1))  // Velikonoční pondělí
	return out
}

// IsHoliday reports whether the date falls on a Czech public holiday.
func IsHoliday(t time.Time) bool {
	for _, h := range Holidays(t.Year()) {
		if h.Month() == t.Month() && h.Day() == t.Day() {
			return true
		}
	}
	return false
}

// IsWeekend reports whether the date is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessOpen reports whether reservations may be taken for the date.
func IsBusinessOpen(t time.Time) bool {
	return !IsWeekend(t) && !IsHoliday(t)
}
