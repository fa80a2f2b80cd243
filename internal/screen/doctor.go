package screen

import (
	"context"
	"sync"

	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/service/portal"
)

// DoctorScreen is the doctor dashboard's view state. It keeps the raw
// fetched collections and re-derives the dashboard on every read, so filter
// and page changes are pure local operations that never refetch.
type DoctorScreen struct {
	svc *portal.Service

	mu         sync.Mutex
	generation uint64
	loading    bool

	doctorID   int64
	doctorName string
	filter     model.AppointmentStatus
	futurePage int
	pastPage   int

	refresh *portal.DoctorRefresh
	reviews []model.Review
}

func NewDoctorScreen(svc *portal.Service) *DoctorScreen {
	return &DoctorScreen{
		svc:        svc,
		filter:     model.StatusAll,
		futurePage: 1,
		pastPage:   1,
		refresh:    emptyRefresh(),
	}
}

func emptyRefresh() *portal.DoctorRefresh {
	return &portal.DoctorRefresh{
		Future: []model.Appointment{},
		Past:   []model.Appointment{},
	}
}

// SelectDoctor switches the dashboard to a doctor and loads everything it
// shows. Selecting 0 clears the screen. Filter and pages reset on every
// selection change.
func (s *DoctorScreen) SelectDoctor(ctx context.Context, doctorID int64) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.doctorID = doctorID
	s.filter = model.StatusAll
	s.futurePage, s.pastPage = 1, 1
	if doctorID == 0 {
		s.doctorName = ""
		s.refresh = emptyRefresh()
		s.reviews = nil
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	name, refresh, reviews := s.svc.DoctorData(ctx, doctorID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.doctorName = name
	s.refresh = refresh
	s.reviews = reviews
	s.loading = false
}

// SetStatusFilter narrows the upcoming list and rewinds it to page one,
// matching how changing the filter behaves in the dashboard controls.
func (s *DoctorScreen) SetStatusFilter(status model.AppointmentStatus) {
	if status != model.StatusAll && !status.Valid() {
		return
	}
	s.mu.Lock()
	s.filter = status
	s.futurePage = 1
	s.mu.Unlock()
}

// SetFuturePage moves the upcoming list to page. Clamping happens at
// derivation time.
func (s *DoctorScreen) SetFuturePage(page int) {
	s.mu.Lock()
	s.futurePage = page
	s.mu.Unlock()
}

// SetPastPage moves the past list to page.
func (s *DoctorScreen) SetPastPage(page int) {
	s.mu.Lock()
	s.pastPage = page
	s.mu.Unlock()
}

// ChangeStatus transitions one appointment and commits the ordered
// re-fetch (future, past, pending) the service performs after the write.
// A stale result for a superseded selection is discarded.
func (s *DoctorScreen) ChangeStatus(ctx context.Context, appointmentID int64, status model.AppointmentStatus) error {
	s.mu.Lock()
	doctorID := s.doctorID
	gen := s.generation
	s.mu.Unlock()

	refresh, err := s.svc.ChangeStatus(ctx, doctorID, appointmentID, status)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.refresh = refresh
	}
	return nil
}

// DoctorID returns the current selection.
func (s *DoctorScreen) DoctorID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doctorID
}

// Loading reports whether a fetch for the current selection is in flight.
func (s *DoctorScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Dashboard derives the display-ready view from the screen's current state.
func (s *DoctorScreen) Dashboard() *portal.DoctorDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return portal.BuildDoctorDashboard(s.doctorName, s.refresh, s.reviews, portal.DashboardQuery{
		DoctorID:   s.doctorID,
		Status:     s.filter,
		FuturePage: s.futurePage,
		PastPage:   s.pastPage,
	})
}
