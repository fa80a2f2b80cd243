package screen

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/service/portal"
)

// gateBackend serves per-patient canned appointments and can hold a
// patient's fetch open until released, to exercise the stale-fetch guard.
type gateBackend struct {
	mu      sync.Mutex
	blocked map[int64]chan struct{} // patientID -> release gate
	started chan int64

	future  []model.Appointment
	past    []model.Appointment
	reviews []model.Review
	pending int
}

func newGateBackend() *gateBackend {
	return &gateBackend{
		blocked: map[int64]chan struct{}{},
		started: make(chan int64, 8),
	}
}

func (g *gateBackend) block(patientID int64) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	gate := make(chan struct{})
	g.blocked[patientID] = gate
	return gate
}

func futureAppt(id int64) model.Appointment {
	return model.Appointment{
		ID:              id,
		AppointmentDate: "2099-01-01",
		AppointmentTime: "09:00:00",
		Status:          model.StatusApproved,
	}
}

func (g *gateBackend) PatientAppointments(_ context.Context, patientID int64) ([]model.Appointment, error) {
	g.started <- patientID
	g.mu.Lock()
	gate := g.blocked[patientID]
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	// one future appointment whose id encodes the patient
	return []model.Appointment{futureAppt(patientID * 100)}, nil
}

func (g *gateBackend) ListPatients(context.Context) ([]model.Patient, error) { return nil, nil }
func (g *gateBackend) CreatePatient(_ context.Context, p *model.Patient) (*model.Patient, error) {
	return p, nil
}
func (g *gateBackend) ListDoctors(context.Context) ([]model.Doctor, error) { return nil, nil }
func (g *gateBackend) GetDoctor(_ context.Context, id int64) (*model.Doctor, error) {
	return &model.Doctor{ID: id, Name: "Amy Santiago"}, nil
}
func (g *gateBackend) CreateAppointment(context.Context, *model.CreateAppointmentRequest) error {
	return nil
}
func (g *gateBackend) UpdateAppointmentStatus(context.Context, int64, model.AppointmentStatus) error {
	return nil
}
func (g *gateBackend) DoctorFutureAppointments(context.Context, int64) ([]model.Appointment, error) {
	return g.future, nil
}
func (g *gateBackend) DoctorPastAppointments(context.Context, int64) ([]model.Appointment, error) {
	return g.past, nil
}
func (g *gateBackend) DoctorPendingCount(context.Context, int64) (int, error) { return g.pending, nil }
func (g *gateBackend) DoctorPatientHistory(context.Context, int64, int64) ([]model.Appointment, error) {
	return nil, nil
}
func (g *gateBackend) DoctorPatientTotal(context.Context, int64, int64) (int, error) { return 0, nil }
func (g *gateBackend) DoctorReviews(context.Context, int64) ([]model.Review, error) {
	return g.reviews, nil
}
func (g *gateBackend) CreateReview(context.Context, *model.Review) error { return nil }

func TestPatientScreenSelectAndView(t *testing.T) {
	backend := newGateBackend()
	s := NewPatientScreen(portal.NewService(backend))

	s.SelectPatient(context.Background(), 1)

	view := s.View()
	assert.Equal(t, int64(1), view.PatientID)
	assert.False(t, view.Loading)
	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, int64(100), view.Upcoming[0].ID)
}

func TestPatientScreenStaleFetchDiscarded(t *testing.T) {
	backend := newGateBackend()
	gate := backend.block(1)
	s := NewPatientScreen(portal.NewService(backend))

	done := make(chan struct{})
	go func() {
		s.SelectPatient(context.Background(), 1)
		close(done)
	}()
	<-backend.started // patient 1 fetch is in flight

	assert.True(t, s.View().Loading)

	// selection moves on while the first fetch hangs
	s.SelectPatient(context.Background(), 2)
	<-backend.started

	view := s.View()
	assert.Equal(t, int64(2), view.PatientID)
	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, int64(200), view.Upcoming[0].ID)

	// the late result for patient 1 must not overwrite patient 2's state
	close(gate)
	<-done

	view = s.View()
	assert.Equal(t, int64(2), view.PatientID)
	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, int64(200), view.Upcoming[0].ID)
	assert.False(t, view.Loading)
}

func TestPatientScreenClearSelection(t *testing.T) {
	backend := newGateBackend()
	s := NewPatientScreen(portal.NewService(backend))

	s.SelectPatient(context.Background(), 1)
	s.SelectPatient(context.Background(), 0)

	view := s.View()
	assert.Zero(t, view.PatientID)
	assert.Empty(t, view.Upcoming)
	assert.Empty(t, view.History)
}

func TestPatientScreenBookSwitchesTab(t *testing.T) {
	backend := newGateBackend()
	s := NewPatientScreen(portal.NewService(backend))
	s.SelectPatient(context.Background(), 1)

	errs, err := s.Book(context.Background(), &model.BookingForm{
		DoctorID: 2,
		Date:     "2099-02-01",
		Time:     "10:00",
		Reason:   "Follow-up",
	})

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, TabUpcoming, s.View().ActiveTab)
}

func TestPatientScreenBookValidationKeepsTab(t *testing.T) {
	backend := newGateBackend()
	s := NewPatientScreen(portal.NewService(backend))
	s.SelectPatient(context.Background(), 1)

	errs, err := s.Book(context.Background(), &model.BookingForm{})

	require.NoError(t, err)
	assert.NotEmpty(t, errs)
	assert.Equal(t, TabBook, s.View().ActiveTab)
}

func TestPatientScreenSetTabRejectsUnknown(t *testing.T) {
	s := NewPatientScreen(portal.NewService(newGateBackend()))

	s.SetTab(TabHistory)
	assert.Equal(t, TabHistory, s.View().ActiveTab)

	s.SetTab("settings")
	assert.Equal(t, TabHistory, s.View().ActiveTab)
}

func TestDoctorScreenSelectAndDerive(t *testing.T) {
	backend := newGateBackend()
	backend.future = []model.Appointment{
		futureAppt(1),
		{ID: 2, AppointmentDate: "2099-01-02", AppointmentTime: "09:00:00", Status: model.StatusRequested},
	}
	backend.past = []model.Appointment{
		{ID: 3, AppointmentDate: "2020-01-01", AppointmentTime: "09:00:00", Status: model.StatusCompleted},
	}
	backend.reviews = []model.Review{{AppointmentID: 3, Rating: 4}}
	backend.pending = 1

	s := NewDoctorScreen(portal.NewService(backend))
	s.SelectDoctor(context.Background(), 7)

	dash := s.Dashboard()
	assert.Equal(t, "Amy Santiago", dash.DoctorName)
	assert.Equal(t, 1, dash.PendingCount)
	assert.Len(t, dash.Upcoming.Items, 2)
	require.Len(t, dash.Past.Items, 1)
	require.NotNil(t, dash.Past.Items[0].Review)

	s.SetStatusFilter(model.StatusRequested)
	dash = s.Dashboard()
	require.Len(t, dash.Upcoming.Items, 1)
	assert.Equal(t, int64(2), dash.Upcoming.Items[0].ID)
}

func TestDoctorScreenFilterResetsFuturePage(t *testing.T) {
	s := NewDoctorScreen(portal.NewService(newGateBackend()))

	s.SetFuturePage(3)
	s.SetStatusFilter(model.StatusApproved)

	dash := s.Dashboard()
	assert.Equal(t, 1, dash.Upcoming.Number)
}

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry(portal.NewService(newGateBackend()), time.Minute)

	first, id := reg.Patient("")
	require.NotEmpty(t, id)

	again, sameID := reg.Patient(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, first, again)

	fresh, freshID := reg.Patient("expired-or-unknown")
	assert.NotEqual(t, id, freshID)
	assert.NotSame(t, first, fresh)
}

func TestRegistryDoctorScreens(t *testing.T) {
	reg := NewRegistry(portal.NewService(newGateBackend()), time.Minute)

	s, id := reg.Doctor("")
	s.SetStatusFilter(model.StatusApproved)

	again, _ := reg.Doctor(id)
	assert.Same(t, s, again)
}
