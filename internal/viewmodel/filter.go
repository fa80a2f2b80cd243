package viewmodel

import "github.com/careconnect/portal-api/internal/model"

// FilterByStatus narrows appointments to those matching status, preserving
// order. The StatusAll sentinel (or an empty status) passes the input
// through untouched. Only upcoming sets are ever filtered; past sets go
// through the review join instead.
func FilterByStatus(appts []model.Appointment, status model.AppointmentStatus) []model.Appointment {
	if status == "" || status == model.StatusAll {
		return appts
	}
	out := make([]model.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}
