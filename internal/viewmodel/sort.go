package viewmodel

import (
	"sort"

	"github.com/careconnect/portal-api/internal/model"
)

type Direction int

const (
	// Ascending orders soonest first, used for upcoming appointments.
	Ascending Direction = iota
	// Descending orders most recent first, used for past appointments.
	Descending
)

// SortByDateTime returns a new slice ordered by the (date, time) composite
// key. The sort is stable: appointments sharing a datetime keep their input
// relative order.
func SortByDateTime(appts []model.Appointment, dir Direction) []model.Appointment {
	out := make([]model.Appointment, len(appts))
	copy(out, appts)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return out[j].DateTime() < out[i].DateTime()
		}
		return out[i].DateTime() < out[j].DateTime()
	})
	return out
}
