// Package screen carries the per-screen UI state the portal's views own:
// the selected entity, active tab, status filter, page numbers, a loading
// flag and the derived lists. Each screen guards itself with a generation
// counter: selecting a different entity bumps the generation, and a fetch
// result is committed only if its generation is still current, so a slow
// response for a superseded selection is discarded instead of applied.
package screen

import (
	"context"
	"sync"

	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/service/portal"
)

// Tabs of the patient screen.
const (
	TabBook     = "book"
	TabUpcoming = "upcoming"
	TabHistory  = "history"
)

// PatientScreen is the patient portal's view state.
type PatientScreen struct {
	svc *portal.Service

	mu         sync.Mutex
	generation uint64
	loading    bool

	patientID int64
	activeTab string
	upcoming  []model.Appointment
	history   []model.Appointment
}

// PatientView is a consistent snapshot of the screen.
type PatientView struct {
	PatientID int64               `json:"patientId"`
	ActiveTab string              `json:"activeTab"`
	Loading   bool                `json:"loading"`
	Upcoming  []model.Appointment `json:"upcoming"`
	History   []model.Appointment `json:"history"`
}

func NewPatientScreen(svc *portal.Service) *PatientScreen {
	return &PatientScreen{svc: svc, activeTab: TabBook}
}

// SelectPatient switches the screen to a patient and loads their
// appointments. Selecting 0 clears the selection and empties both lists.
func (s *PatientScreen) SelectPatient(ctx context.Context, patientID int64) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.patientID = patientID
	if patientID == 0 {
		s.upcoming, s.history = nil, nil
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	view := s.svc.PatientAppointments(ctx, patientID)

	s.commit(gen, view)
}

// Refresh re-runs the fetch for the current selection, used after mutating
// actions so the screen settles on fresh data.
func (s *PatientScreen) Refresh(ctx context.Context) {
	s.mu.Lock()
	patientID := s.patientID
	gen := s.generation
	if patientID == 0 {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	view := s.svc.PatientAppointments(ctx, patientID)

	s.commit(gen, view)
}

// commit applies a fetch result unless the selection moved on.
func (s *PatientScreen) commit(gen uint64, view *portal.PatientAppointments) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.upcoming = view.Upcoming
	s.history = view.History
	s.loading = false
}

// SetTab switches the active tab. Tab changes never trigger a fetch.
func (s *PatientScreen) SetTab(tab string) {
	switch tab {
	case TabBook, TabUpcoming, TabHistory:
	default:
		return
	}
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
}

// Book submits the booking form through the service; on success the fresh
// view is committed and the screen jumps to the upcoming tab.
func (s *PatientScreen) Book(ctx context.Context, form *model.BookingForm) (map[string]string, error) {
	s.mu.Lock()
	form.PatientID = s.patientID
	gen := s.generation
	s.mu.Unlock()

	errs, view, err := s.svc.BookAppointment(ctx, form)
	if err != nil || len(errs) > 0 {
		return errs, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.upcoming = view.Upcoming
		s.history = view.History
		s.activeTab = TabUpcoming
	}
	return nil, nil
}

// Cancel cancels one of the selected patient's appointments.
func (s *PatientScreen) Cancel(ctx context.Context, appointmentID int64) error {
	s.mu.Lock()
	patientID := s.patientID
	gen := s.generation
	s.mu.Unlock()

	view, err := s.svc.CancelAppointment(ctx, patientID, appointmentID)
	if err != nil {
		return err
	}

	s.commit(gen, view)
	return nil
}

// SubmitReview submits a review for one of the patient's completed
// appointments and commits the refreshed lists.
func (s *PatientScreen) SubmitReview(ctx context.Context, form *model.ReviewForm) (map[string]string, error) {
	s.mu.Lock()
	if form.PatientID == 0 {
		form.PatientID = s.patientID
	}
	gen := s.generation
	s.mu.Unlock()

	errs, view, err := s.svc.SubmitReview(ctx, form)
	if err != nil || len(errs) > 0 {
		return errs, err
	}

	s.commit(gen, view)
	return nil, nil
}

// View returns a snapshot of the screen state.
func (s *PatientScreen) View() PatientView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PatientView{
		PatientID: s.patientID,
		ActiveTab: s.activeTab,
		Loading:   s.loading,
		Upcoming:  append([]model.Appointment(nil), s.upcoming...),
		History:   append([]model.Appointment(nil), s.history...),
	}
}

// PatientID returns the current selection.
func (s *PatientScreen) PatientID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patientID
}
