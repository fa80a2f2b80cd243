package model

// Review is a patient-submitted rating for one completed appointment.
// AppointmentID is the join key; the data model implies one-to-one.
type Review struct {
	AppointmentID int64  `json:"appointmentId"`
	PatientID     int64  `json:"patientId"`
	DoctorID      int64  `json:"doctorId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

type ReviewForm struct {
	AppointmentID int64  `json:"appointmentId" validate:"required"`
	PatientID     int64  `json:"patientId" validate:"required"`
	DoctorID      int64  `json:"doctorId" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}
