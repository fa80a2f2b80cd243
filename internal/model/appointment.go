package model

type AppointmentStatus string

const (
	StatusRequested   AppointmentStatus = "REQUESTED"
	StatusApproved    AppointmentStatus = "APPROVED"
	StatusCompleted   AppointmentStatus = "COMPLETED"
	StatusCancelled   AppointmentStatus = "CANCELLED"
	StatusRescheduled AppointmentStatus = "RESCHEDULED"

	// StatusAll is the sentinel accepted by upcoming-appointment views to
	// disable status filtering.
	StatusAll AppointmentStatus = "all"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusCompleted, StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// Appointment is the denormalized shape returned by the scheduling backend.
// Patient and Doctor are snapshots embedded by the backend, never re-fetched.
type Appointment struct {
	ID              int64             `json:"id"`
	Patient         Patient           `json:"patient"`
	Doctor          Doctor            `json:"doctor"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`

	// Review is attached by the view-model layer for reviewed past
	// appointments; the backend never sends it.
	Review *Review `json:"review,omitempty"`
}

// DateTime returns the composite ordering key. Date and time are local
// wall-clock strings; concatenated they compare lexicographically in
// chronological order, so no timezone normalization happens anywhere.
func (a *Appointment) DateTime() string {
	return a.AppointmentDate + "T" + a.AppointmentTime
}

// CreateAppointmentRequest is the booking payload sent upstream.
type CreateAppointmentRequest struct {
	PatientID       int64  `json:"patientId"`
	DoctorID        int64  `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Reason          string `json:"reason"`
}

type StatusChangeRequest struct {
	Status AppointmentStatus `json:"status"`
}
