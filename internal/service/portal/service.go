// Package portal runs the fetch-and-derive pipeline behind every screen:
// it pulls raw collections from the scheduling backend, shapes them with the
// view-model derivations and enforces the mutate-then-refetch ordering for
// every write.
package portal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/validate"
	"github.com/careconnect/portal-api/internal/viewmodel"
	perrors "github.com/careconnect/portal-api/pkg/errors"
)

// Backend is the slice of the upstream client the portal consumes.
type Backend interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
	CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	ListDoctors(ctx context.Context) ([]model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) error
	UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus) error
	PatientAppointments(ctx context.Context, patientID int64) ([]model.Appointment, error)
	DoctorFutureAppointments(ctx context.Context, doctorID int64) ([]model.Appointment, error)
	DoctorPastAppointments(ctx context.Context, doctorID int64) ([]model.Appointment, error)
	DoctorPendingCount(ctx context.Context, doctorID int64) (int, error)
	DoctorPatientHistory(ctx context.Context, doctorID, patientID int64) ([]model.Appointment, error)
	DoctorPatientTotal(ctx context.Context, doctorID, patientID int64) (int, error)
	DoctorReviews(ctx context.Context, doctorID int64) ([]model.Review, error)
	CreateReview(ctx context.Context, review *model.Review) error
}

type Service struct {
	backend Backend

	// now is swapped in tests to pin the partition boundary.
	now func() time.Time
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend, now: time.Now}
}

// PatientAppointments is the patient screen's read pipeline: fetch, split
// around now, sort upcoming soonest-first and history most-recent-first. A
// failed fetch degrades to two empty lists, never an error; the screen shows
// "no appointments" instead of breaking.
func (s *Service) PatientAppointments(ctx context.Context, patientID int64) *PatientAppointments {
	appts, err := s.backend.PatientAppointments(ctx, patientID)
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Msg("failed to fetch patient appointments")
		return emptyPatientAppointments()
	}

	past, future := viewmodel.Partition(appts, s.now())
	return &PatientAppointments{
		Upcoming: viewmodel.SortByDateTime(future, viewmodel.Ascending),
		History:  viewmodel.SortByDateTime(past, viewmodel.Descending),
	}
}

// DashboardQuery names the doctor screen's view state: selected doctor,
// status filter for the upcoming list and the two page numbers.
type DashboardQuery struct {
	DoctorID   int64
	Status     model.AppointmentStatus
	FuturePage int
	PastPage   int
}

// DoctorDashboard assembles the doctor screen: doctor detail, pending
// count, the filtered and sorted upcoming page, and the review-joined,
// sorted past page. Each fetch degrades independently so one failed call
// cannot take down the whole dashboard.
func (s *Service) DoctorDashboard(ctx context.Context, q DashboardQuery) *DoctorDashboard {
	name, refresh, reviews := s.DoctorData(ctx, q.DoctorID)
	return BuildDoctorDashboard(name, refresh, reviews, q)
}

// DoctorData fetches everything the doctor screen keeps: the doctor's name
// (falling back to "Doctor"), the mutable collections and the reviews.
func (s *Service) DoctorData(ctx context.Context, doctorID int64) (string, *DoctorRefresh, []model.Review) {
	name := "Doctor"
	if doctor, err := s.backend.GetDoctor(ctx, doctorID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Msg("failed to fetch doctor detail")
	} else if doctor.Name != "" {
		name = doctor.Name
	}

	refresh := s.refreshDoctor(ctx, doctorID)

	reviews, err := s.backend.DoctorReviews(ctx, doctorID)
	if err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Msg("failed to fetch doctor reviews")
		reviews = nil
	}

	return name, refresh, reviews
}

// BuildDoctorDashboard derives the dashboard view from already-fetched
// collections. Split out so a stateful screen can re-derive on filter or
// page changes without re-fetching.
func BuildDoctorDashboard(name string, refresh *DoctorRefresh, reviews []model.Review, q DashboardQuery) *DoctorDashboard {
	future := viewmodel.FilterByStatus(refresh.Future, q.Status)
	future = viewmodel.SortByDateTime(future, viewmodel.Ascending)

	past := viewmodel.AttachReviews(refresh.Past, reviews)
	past = viewmodel.SortByDateTime(past, viewmodel.Descending)

	status := q.Status
	if status == "" {
		status = model.StatusAll
	}

	return &DoctorDashboard{
		DoctorName:   name,
		PendingCount: refresh.PendingCount,
		StatusFilter: status,
		Upcoming:     viewmodel.Paginate(future, viewmodel.DefaultPageSize, q.FuturePage),
		Past:         viewmodel.Paginate(past, viewmodel.DefaultPageSize, q.PastPage),
	}
}

// BookAppointment validates the booking form and, only when it is clean,
// creates the appointment upstream and re-fetches the patient's
// appointments. Returns the field errors (nil upstream call made), the
// refreshed view, or the upstream error.
func (s *Service) BookAppointment(ctx context.Context, form *model.BookingForm) (map[string]string, *PatientAppointments, error) {
	if errs := validate.Booking(form); len(errs) > 0 {
		return errs, nil, nil
	}

	req := &model.CreateAppointmentRequest{
		PatientID:       form.PatientID,
		DoctorID:        form.DoctorID,
		AppointmentDate: form.Date,
		AppointmentTime: validate.NormalizeTime(form.Time),
		Reason:          strings.TrimSpace(form.Reason),
	}
	if err := s.backend.CreateAppointment(ctx, req); err != nil {
		return nil, nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	return nil, s.PatientAppointments(ctx, form.PatientID), nil
}

// CancelAppointment is the patient-side status transition: only CANCELLED
// is reachable from here. The patient view is re-fetched after the write.
func (s *Service) CancelAppointment(ctx context.Context, patientID, appointmentID int64) (*PatientAppointments, error) {
	if err := s.backend.UpdateAppointmentStatus(ctx, appointmentID, model.StatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return s.PatientAppointments(ctx, patientID), nil
}

// ChangeStatus is the doctor-side transition. After the PATCH it re-fetches
// future, past and pending in exactly that order; the UI is not settled
// until all three complete.
func (s *Service) ChangeStatus(ctx context.Context, doctorID, appointmentID int64, status model.AppointmentStatus) (*DoctorRefresh, error) {
	if !status.Valid() {
		return nil, perrors.NewBadRequest(fmt.Sprintf("invalid status %q", status), nil)
	}
	if err := s.backend.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return s.refreshDoctor(ctx, doctorID), nil
}

// refreshDoctor fetches the doctor's mutable collections in the fixed
// order future, past, pending. Each degrades independently to its zero
// value on failure.
func (s *Service) refreshDoctor(ctx context.Context, doctorID int64) *DoctorRefresh {
	refresh := &DoctorRefresh{
		Future: []model.Appointment{},
		Past:   []model.Appointment{},
	}

	if future, err := s.backend.DoctorFutureAppointments(ctx, doctorID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Msg("failed to fetch future appointments")
	} else {
		refresh.Future = future
	}

	if past, err := s.backend.DoctorPastAppointments(ctx, doctorID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Msg("failed to fetch past appointments")
	} else {
		refresh.Past = past
	}

	if pending, err := s.backend.DoctorPendingCount(ctx, doctorID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Msg("failed to fetch pending count")
	} else {
		refresh.PendingCount = pending
	}

	return refresh
}

// CreatePatient validates the profile form and creates the patient
// upstream. The directory cache invalidation lives in the backend client.
func (s *Service) CreatePatient(ctx context.Context, form *model.NewPatientForm) (map[string]string, *model.Patient, error) {
	if errs := validate.NewPatient(form); len(errs) > 0 {
		return errs, nil, nil
	}

	patient := &model.Patient{
		Name:        strings.TrimSpace(form.Name),
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		DateOfBirth: form.DateOfBirth,
	}
	created, err := s.backend.CreatePatient(ctx, patient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return nil, created, nil
}

// CreateDoctor validates the doctor form. The upstream contract exposes no
// doctor-creation endpoint, so a clean form is acknowledged without a
// network call.
func (s *Service) CreateDoctor(_ context.Context, form *model.NewDoctorForm) map[string]string {
	return validate.NewDoctor(form)
}

// SubmitReview validates the review form, creates the review upstream and
// re-fetches the patient's appointments.
func (s *Service) SubmitReview(ctx context.Context, form *model.ReviewForm) (map[string]string, *PatientAppointments, error) {
	if errs := validate.Review(form); len(errs) > 0 {
		return errs, nil, nil
	}

	review := &model.Review{
		AppointmentID: form.AppointmentID,
		PatientID:     form.PatientID,
		DoctorID:      form.DoctorID,
		Rating:        form.Rating,
		Comment:       form.Comment,
	}
	if err := s.backend.CreateReview(ctx, review); err != nil {
		return nil, nil, fmt.Errorf("failed to submit review: %w", err)
	}

	return nil, s.PatientAppointments(ctx, form.PatientID), nil
}

// PatientHistory backs the doctor's patient-tracking panel: the shared
// appointment history plus the server-computed total.
func (s *Service) PatientHistory(ctx context.Context, doctorID, patientID int64) *PatientHistory {
	history := &PatientHistory{Appointments: []model.Appointment{}}

	if appts, err := s.backend.DoctorPatientHistory(ctx, doctorID, patientID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Int64("patient_id", patientID).
			Msg("failed to fetch doctor-patient history")
	} else {
		history.Appointments = viewmodel.SortByDateTime(appts, viewmodel.Descending)
	}

	if total, err := s.backend.DoctorPatientTotal(ctx, doctorID, patientID); err != nil {
		log.Error().Err(err).Int64("doctor_id", doctorID).Int64("patient_id", patientID).
			Msg("failed to fetch doctor-patient total")
	} else {
		history.TotalAppointments = total
	}

	return history
}

// Patients returns the patient directory, empty on failure.
func (s *Service) Patients(ctx context.Context) []model.Patient {
	patients, err := s.backend.ListPatients(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch patient directory")
		return []model.Patient{}
	}
	return patients
}

// Doctors returns the doctor directory, empty on failure.
func (s *Service) Doctors(ctx context.Context) []model.Doctor {
	doctors, err := s.backend.ListDoctors(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch doctor directory")
		return []model.Doctor{}
	}
	return doctors
}

// Doctor returns one doctor's detail. Unlike the list reads this surfaces
// the error, the detail view has no empty fallback.
func (s *Service) Doctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.backend.GetDoctor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}
	return doctor, nil
}
