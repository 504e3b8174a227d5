// Package pricing derives a reservation price from its duration.
package pricing

import "errors"

// Prices are whole Czech crowns.
const (
	HourlyRate       = 99
	FullDayPrice     = 399
	FullDayThreshold = 4
)

var ErrInvalidDuration = errors.New("duration must be at least one hour")

// Price returns the total price for a reservation of the given number of
// hourly slots. Four or more hours are billed at the flat full-day price.
func Price(durationHours int) (int, error) {
	if durationHours < 1 {
		return 0, ErrInvalidDuration
	}
	if durationHours >= FullDayThreshold {
		return FullDayPrice, nil
	}
	return durationHours * HourlyRate, nil
}
