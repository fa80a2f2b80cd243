// Package validate performs the client-side form checks that run before any
// upstream call. Each check returns a map of field name to human-readable
// message; an empty map means the form is valid. Failures here never reach
// the network layer.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/careconnect/portal-api/internal/model"
)

var (
	validate = newValidator()

	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,17}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// "required" alone accepts all-whitespace strings; reason and names must
	// survive trimming.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// fieldSpec maps a struct field to its wire-level name and display label.
type fieldSpec struct {
	name  string
	label string
}

var bookingFields = map[string]fieldSpec{
	"PatientID": {"patient", "Patient"},
	"DoctorID":  {"doctor", "Doctor"},
	"Date":      {"date", "Date"},
	"Time":      {"time", "Time"},
	"Reason":    {"reason", "Reason"},
}

var patientFields = map[string]fieldSpec{
	"Name":        {"name", "Name"},
	"Email":       {"email", "Email"},
	"PhoneNumber": {"phoneNumber", "Phone number"},
	"DateOfBirth": {"dateOfBirth", "Date of birth"},
}

var doctorFields = map[string]fieldSpec{
	"Name":           {"name", "Name"},
	"Specialization": {"specialization", "Specialization"},
	"Email":          {"email", "Email"},
	"PhoneNumber":    {"phoneNumber", "Phone number"},
}

var reviewFields = map[string]fieldSpec{
	"AppointmentID": {"appointmentId", "Appointment"},
	"PatientID":     {"patientId", "Patient"},
	"DoctorID":      {"doctorId", "Doctor"},
	"Rating":        {"rating", "Rating"},
	"Comment":       {"comment", "Comment"},
}

// Booking validates an appointment-booking form.
func Booking(form *model.BookingForm) map[string]string {
	return check(form, bookingFields)
}

// NewPatient validates a patient-creation form.
func NewPatient(form *model.NewPatientForm) map[string]string {
	return check(form, patientFields)
}

// NewDoctor validates a doctor-creation form.
func NewDoctor(form *model.NewDoctorForm) map[string]string {
	return check(form, doctorFields)
}

// Review validates a review-submission form.
func Review(form *model.ReviewForm) map[string]string {
	return check(form, reviewFields)
}

func check(form interface{}, fields map[string]fieldSpec) map[string]string {
	errs := map[string]string{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form"
		return errs
	}

	for _, fe := range vErrs {
		spec, ok := fields[fe.StructField()]
		if !ok {
			spec = fieldSpec{strings.ToLower(fe.StructField()), fe.StructField()}
		}
		if _, seen := errs[spec.name]; seen {
			continue
		}
		errs[spec.name] = message(spec.label, fe)
	}
	return errs
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "email":
		return label + " is invalid"
	case "phone":
		return label + " is invalid"
	case "datetime":
		return label + " is invalid"
	case "min", "max":
		return label + " must be between 1 and 5"
	default:
		return label + " is invalid"
	}
}
