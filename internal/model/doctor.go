package model

type Doctor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
}

type NewDoctorForm struct {
	Name           string `json:"name" validate:"required,notblank"`
	Specialization string `json:"specialization" validate:"required,notblank"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required,phone"`
}
