package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/portal-api/internal/model"
	perrors "github.com/careconnect/portal-api/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, CacheTTL: time.Minute})
}

func TestListPatients(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/patients", r.URL.Path)
		w.Write([]byte(`[{"id":1,"name":"Jane Roe","email":"jane@example.com"}]`))
	}))

	patients, err := c.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Jane Roe", patients[0].Name)
}

func TestListPatientsNonArrayBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"no patients table"}`))
	}))

	patients, err := c.ListPatients(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, patients)
	assert.Empty(t, patients)
}

func TestListPatientsCached(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"id":1,"name":"Jane Roe"}]`))
	}))

	_, err := c.ListPatients(context.Background())
	require.NoError(t, err)
	_, err = c.ListPatients(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestCreatePatientInvalidatesCache(t *testing.T) {
	listCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/patients", func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("POST /api/patients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":9,"name":"New Patient"}`))
	})
	c := newTestClient(t, mux)

	_, err := c.ListPatients(context.Background())
	require.NoError(t, err)

	created, err := c.CreatePatient(context.Background(), &model.Patient{Name: "New Patient"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	_, err = c.ListPatients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"id":7,"status":"APPROVED"}`))
	}))

	err := c.UpdateAppointmentStatus(context.Background(), 7, model.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/appointments/7/status", gotPath)
	assert.JSONEq(t, `{"status":"APPROVED"}`, gotBody)
}

func TestDoctorPendingCount(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/doctor/4/pending", r.URL.Path)
		w.Write([]byte(`{"pendingCount":3}`))
	}))

	count, err := c.DoctorPendingCount(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDoctorPendingCountMalformedBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	count, err := c.DoctorPendingCount(context.Background(), 4)

	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpstreamErrorStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	err := c.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{})

	require.Error(t, err)
	appErr, ok := perrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, perrors.ErrUpstream, appErr.Code)
}

func TestDoctorPatientTotal(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/doctor/4/patient/2/total", r.URL.Path)
		w.Write([]byte(`{"totalAppointments":12}`))
	}))

	total, err := c.DoctorPatientTotal(context.Background(), 4, 2)

	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestDoctorReviews(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"appointmentId":5,"patientId":1,"doctorId":4,"rating":4,"comment":"ok"}]`))
	}))

	reviews, err := c.DoctorReviews(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(5), reviews[0].AppointmentID)
}
