package model

// BookingForm carries the raw appointment-request fields as submitted.
// Zero IDs mean "nothing selected". Time may arrive as HH:MM and is
// normalized to HH:MM:SS before it crosses the upstream boundary.
type BookingForm struct {
	PatientID int64  `json:"patientId" validate:"required"`
	DoctorID  int64  `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Reason    string `json:"reason" validate:"required,notblank"`
}
