package portal

import (
	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/viewmodel"
)

// PatientAppointments is the patient screen's derived view: upcoming sorted
// soonest-first, history most-recent-first.
type PatientAppointments struct {
	Upcoming []model.Appointment `json:"upcoming"`
	History  []model.Appointment `json:"history"`
}

func emptyPatientAppointments() *PatientAppointments {
	return &PatientAppointments{
		Upcoming: []model.Appointment{},
		History:  []model.Appointment{},
	}
}

// DoctorRefresh carries the doctor's raw mutable collections, re-fetched in
// order after every status change.
type DoctorRefresh struct {
	Future       []model.Appointment `json:"future"`
	Past         []model.Appointment `json:"past"`
	PendingCount int                 `json:"pendingCount"`
}

// DoctorDashboard is the doctor screen's derived view.
type DoctorDashboard struct {
	DoctorName   string                  `json:"doctorName"`
	PendingCount int                     `json:"pendingCount"`
	StatusFilter model.AppointmentStatus `json:"statusFilter"`
	Upcoming     viewmodel.Page          `json:"upcoming"`
	Past         viewmodel.Page          `json:"past"`
}

// PatientHistory backs the patient-tracking panel.
type PatientHistory struct {
	Appointments      []model.Appointment `json:"appointments"`
	TotalAppointments int                 `json:"totalAppointments"`
}
