// Package viewmodel holds the pure derivations that turn raw backend
// collections into display-ready appointment views: partitioning around
// "now", chronological sorting, status filtering, review joining and
// pagination. Everything here is side-effect free and never mutates its
// input.
package viewmodel

import (
	"time"

	"github.com/careconnect/portal-api/internal/model"
)

// DateTimeLayout formats an instant into the same wall-clock key an
// Appointment's date and time concatenate to.
const DateTimeLayout = "2006-01-02T15:04:05"

// Partition splits appointments into past and future relative to now.
// The boundary is inclusive on the future side: an appointment whose
// datetime equals now belongs to future, never past. A nil input yields
// two empty slices so list views degrade to "no appointments" instead of
// failing.
func Partition(appts []model.Appointment, now time.Time) (past, future []model.Appointment) {
	past = make([]model.Appointment, 0, len(appts))
	future = make([]model.Appointment, 0, len(appts))
	nowKey := now.Format(DateTimeLayout)
	for _, a := range appts {
		if a.DateTime() < nowKey {
			past = append(past, a)
		} else {
			future = append(future, a)
		}
	}
	return past, future
}
