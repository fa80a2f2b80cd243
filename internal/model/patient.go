package model

type Patient struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
}

// NewPatientForm is the profile-creation form. Patients are immutable after
// creation, there is no edit flow.
type NewPatientForm struct {
	Name        string `json:"name" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}
