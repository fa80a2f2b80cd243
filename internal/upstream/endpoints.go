package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	perrors "github.com/careconnect/portal-api/pkg/errors"

	"github.com/careconnect/portal-api/internal/model"
)

// ListPatients returns the patient directory, served from the short-TTL
// cache when warm.
func (c *Client) ListPatients(ctx context.Context) ([]model.Patient, error) {
	if cached, ok := c.cache.Get(patientsCacheKey); ok {
		return cached.([]model.Patient), nil
	}

	patients := []model.Patient{}
	if err := c.getList(ctx, "/api/patients", "list_patients", &patients); err != nil {
		return nil, err
	}
	c.cache.Set(patientsCacheKey, patients, c.cacheTTL)
	return patients, nil
}

// CreatePatient registers a new patient profile and invalidates the
// directory cache.
func (c *Client) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/patients", patient, "create_patient")
	if err != nil {
		return nil, err
	}

	var created model.Patient
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, perrors.NewUpstream("create_patient", fmt.Errorf("decoding response: %w", err))
	}
	c.cache.Delete(patientsCacheKey)
	return &created, nil
}

// ListDoctors returns the doctor directory, served from the short-TTL cache
// when warm.
func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	if cached, ok := c.cache.Get(doctorsCacheKey); ok {
		return cached.([]model.Doctor), nil
	}

	doctors := []model.Doctor{}
	if err := c.getList(ctx, "/api/doctors", "list_doctors", &doctors); err != nil {
		return nil, err
	}
	c.cache.Set(doctorsCacheKey, doctors, c.cacheTTL)
	return doctors, nil
}

// GetDoctor fetches one doctor's detail.
func (c *Client) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/doctors/%d", id), nil, "get_doctor")
	if err != nil {
		return nil, err
	}

	var doctor model.Doctor
	if err := json.Unmarshal(data, &doctor); err != nil {
		return nil, perrors.NewUpstream("get_doctor", fmt.Errorf("decoding response: %w", err))
	}
	return &doctor, nil
}

// CreateAppointment books an appointment. The payload's time must already
// be normalized to HH:MM:SS.
func (c *Client) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/appointments", req, "create_appointment")
	return err
}

// UpdateAppointmentStatus transitions one appointment's status, the only
// mutable appointment field.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	path := fmt.Sprintf("/api/appointments/%d/status", id)
	_, err := c.do(ctx, http.MethodPatch, path, model.StatusChangeRequest{Status: status}, "update_status")
	return err
}

// PatientAppointments lists every appointment for one patient, past and
// future mixed.
func (c *Client) PatientAppointments(ctx context.Context, patientID int64) ([]model.Appointment, error) {
	appts := []model.Appointment{}
	path := fmt.Sprintf("/api/appointments/patient/%d", patientID)
	if err := c.getList(ctx, path, "patient_appointments", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// DoctorFutureAppointments lists a doctor's upcoming appointments.
func (c *Client) DoctorFutureAppointments(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	appts := []model.Appointment{}
	path := fmt.Sprintf("/api/appointments/doctor/%d/future", doctorID)
	if err := c.getList(ctx, path, "doctor_future", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// DoctorPastAppointments lists a doctor's past appointments.
func (c *Client) DoctorPastAppointments(ctx context.Context, doctorID int64) ([]model.Appointment, error) {
	appts := []model.Appointment{}
	path := fmt.Sprintf("/api/appointments/doctor/%d/past", doctorID)
	if err := c.getList(ctx, path, "doctor_past", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// DoctorPendingCount returns how many of a doctor's appointments are in
// REQUESTED status, computed server-side. An unexpected body counts as 0.
func (c *Client) DoctorPendingCount(ctx context.Context, doctorID int64) (int, error) {
	path := fmt.Sprintf("/api/appointments/doctor/%d/pending", doctorID)
	data, err := c.do(ctx, http.MethodGet, path, nil, "doctor_pending")
	if err != nil {
		return 0, err
	}

	var payload struct {
		PendingCount int `json:"pendingCount"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, nil
	}
	return payload.PendingCount, nil
}

// DoctorPatientHistory lists every appointment between one doctor and one
// patient.
func (c *Client) DoctorPatientHistory(ctx context.Context, doctorID, patientID int64) ([]model.Appointment, error) {
	appts := []model.Appointment{}
	path := fmt.Sprintf("/api/appointments/doctor/%d/patient/%d", doctorID, patientID)
	if err := c.getList(ctx, path, "doctor_patient_history", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// DoctorPatientTotal returns the total appointment count between one doctor
// and one patient. An unexpected body counts as 0.
func (c *Client) DoctorPatientTotal(ctx context.Context, doctorID, patientID int64) (int, error) {
	path := fmt.Sprintf("/api/appointments/doctor/%d/patient/%d/total", doctorID, patientID)
	data, err := c.do(ctx, http.MethodGet, path, nil, "doctor_patient_total")
	if err != nil {
		return 0, err
	}

	var payload struct {
		TotalAppointments int `json:"totalAppointments"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, nil
	}
	return payload.TotalAppointments, nil
}

// DoctorReviews lists every review left for one doctor.
func (c *Client) DoctorReviews(ctx context.Context, doctorID int64) ([]model.Review, error) {
	reviews := []model.Review{}
	path := fmt.Sprintf("/api/reviews/doctor/%d", doctorID)
	if err := c.getList(ctx, path, "doctor_reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a review for a completed appointment.
func (c *Client) CreateReview(ctx context.Context, review *model.Review) error {
	_, err := c.do(ctx, http.MethodPost, "/api/reviews", review, "create_review")
	return err
}
