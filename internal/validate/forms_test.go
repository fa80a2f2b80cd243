package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careconnect/portal-api/internal/model"
)

func TestBookingValid(t *testing.T) {
	errs := Booking(&model.BookingForm{
		PatientID: 1,
		DoctorID:  2,
		Date:      "2025-09-01",
		Time:      "09:30",
		Reason:    "Annual checkup",
	})

	assert.Empty(t, errs)
}

func TestBookingMissingPatientAndBlankReason(t *testing.T) {
	errs := Booking(&model.BookingForm{
		DoctorID: 2,
		Date:     "2025-09-01",
		Time:     "09:30",
		Reason:   " ",
	})

	assert.Equal(t, map[string]string{
		"patient": "Patient is required",
		"reason":  "Reason is required",
	}, errs)
}

func TestBookingEmptyForm(t *testing.T) {
	errs := Booking(&model.BookingForm{})

	assert.Len(t, errs, 5)
	assert.Equal(t, "Patient is required", errs["patient"])
	assert.Equal(t, "Doctor is required", errs["doctor"])
	assert.Equal(t, "Date is required", errs["date"])
	assert.Equal(t, "Time is required", errs["time"])
	assert.Equal(t, "Reason is required", errs["reason"])
}

func TestNewPatient(t *testing.T) {
	valid := &model.NewPatientForm{
		Name:        "Jane Roe",
		Email:       "jane@example.com",
		PhoneNumber: "+1 555-0100",
		DateOfBirth: "1990-01-31",
	}
	assert.Empty(t, NewPatient(valid))

	errs := NewPatient(&model.NewPatientForm{
		Name:        "  ",
		Email:       "not-an-email",
		PhoneNumber: "abc",
		DateOfBirth: "31/01/1990",
	})
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is invalid", errs["email"])
	assert.Equal(t, "Phone number is invalid", errs["phoneNumber"])
	assert.Equal(t, "Date of birth is invalid", errs["dateOfBirth"])
}

func TestNewDoctor(t *testing.T) {
	valid := &model.NewDoctorForm{
		Name:           "Gregory House",
		Specialization: "Diagnostics",
		Email:          "house@example.com",
		PhoneNumber:    "555-0199",
	}
	assert.Empty(t, NewDoctor(valid))

	errs := NewDoctor(&model.NewDoctorForm{Email: "house@example.com", PhoneNumber: "555-0199"})
	assert.Equal(t, map[string]string{
		"name":           "Name is required",
		"specialization": "Specialization is required",
	}, errs)
}

func TestReview(t *testing.T) {
	valid := &model.ReviewForm{AppointmentID: 1, PatientID: 2, DoctorID: 3, Rating: 5}
	assert.Empty(t, Review(valid))

	errs := Review(&model.ReviewForm{AppointmentID: 1, PatientID: 2, DoctorID: 3, Rating: 6})
	assert.Equal(t, "Rating must be between 1 and 5", errs["rating"])

	errs = Review(&model.ReviewForm{PatientID: 2, DoctorID: 3, Rating: 4})
	assert.Equal(t, "Appointment is required", errs["appointmentId"])
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "09:30:00", NormalizeTime("09:30"))
	assert.Equal(t, "09:30:00", NormalizeTime("09:30:00"))
	assert.Equal(t, "", NormalizeTime(""))
	assert.Equal(t, "9:30", NormalizeTime("9:30"))
}
