package reservation

import (
	"sort"

	"pricna/internal/domain"
)

// Catalog is the fixed sequence of bookable hourly slots. Each label names
// the hour it starts; the last slot ends at DayEnd.
var Catalog = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
}

// DayEnd closes the last slot's display range. Never stored.
const DayEnd = "19:00"

var catalogIndex = func() map[string]int {
	m := make(map[string]int, len(Catalog))
	for i, s := range Catalog {
		m[s] = i
	}
	return m
}()

// ValidSlot reports whether the label belongs to the daily catalog.
func ValidSlot(slot string) bool {
	_, ok := catalogIndex[slot]
	return ok
}

// normalizeSlots deduplicates and orders requested slots by catalog position.
// Returns ErrValidation when the set is empty or holds an unknown label.
func normalizeSlots(slots []string) ([]string, error) {
	if len(slots) == 0 {
		return nil, ErrValidation
	}
	seen := make(map[string]bool, len(slots))
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		if !ValidSlot(s) {
			return nil, ErrValidation
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return catalogIndex[out[i]] < catalogIndex[out[j]] })
	return out, nil
}

// bookedUnion collects every slot held by a non-cancelled reservation,
// deduplicated and in catalog order.
func bookedUnion(reservations []domain.Reservation) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		for _, s := range r.TimeSlots {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return catalogIndex[out[i]] < catalogIndex[out[j]] })
	return out
}

// conflicts returns the requested slots that are already booked, in catalog order.
func conflicts(requested, booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}
	out := make([]string, 0)
	for _, s := range requested {
		if taken[s] {
			out = append(out, s)
		}
	}
	return out
}

// freeSlots returns the catalog minus the booked set.
func freeSlots(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}
	out := make([]string, 0, len(Catalog))
	for _, s := range Catalog {
		if !taken[s] {
			out = append(out, s)
		}
	}
	return out
}

// TimeRange returns the display range of a normalized slot set, e.g.
// ["09:00","10:00"] -> "09:00", "11:00". The end of the last catalog slot
// is DayEnd.
func TimeRange(slots []string) (start, end string) {
	if len(slots) == 0 {
		return "", ""
	}
	start = slots[0]
	last := slots[len(slots)-1]
	if i := catalogIndex[last]; i+1 < len(Catalog) {
		end = Catalog[i+1]
	} else {
		end = DayEnd
	}
	return start, end
}
