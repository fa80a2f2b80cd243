package viewmodel

import (
	"github.com/rs/zerolog/log"

	"github.com/careconnect/portal-api/internal/model"
)

// AttachReviews returns a slice of the same length and order as past, where
// each appointment with a matching review (review.appointmentId equals the
// appointment id) carries that review. The backend's data model implies at
// most one review per appointment; if duplicates show up anyway the first
// one in review input order wins and the violation is logged.
func AttachReviews(past []model.Appointment, reviews []model.Review) []model.Appointment {
	byAppointment := make(map[int64]*model.Review, len(reviews))
	for i := range reviews {
		r := reviews[i]
		if _, ok := byAppointment[r.AppointmentID]; ok {
			log.Warn().
				Int64("appointment_id", r.AppointmentID).
				Msg("multiple reviews for one appointment, keeping first")
			continue
		}
		byAppointment[r.AppointmentID] = &r
	}

	out := make([]model.Appointment, len(past))
	for i, a := range past {
		if r, ok := byAppointment[a.ID]; ok {
			a.Review = r
		}
		out[i] = a
	}
	return out
}
