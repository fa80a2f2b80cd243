package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/portal-api/internal/model"
)

func TestAttachReviews(t *testing.T) {
	past := []model.Appointment{
		appt(1, "2025-01-10", "09:00:00"),
		appt(2, "2025-01-11", "09:00:00"),
		appt(3, "2025-01-12", "09:00:00"),
	}
	reviews := []model.Review{
		{AppointmentID: 2, PatientID: 7, DoctorID: 4, Rating: 5, Comment: "great"},
	}

	out := AttachReviews(past, reviews)

	require.Len(t, out, 3)
	assert.Nil(t, out[0].Review)
	require.NotNil(t, out[1].Review)
	assert.Equal(t, 5, out[1].Review.Rating)
	assert.Equal(t, "great", out[1].Review.Comment)
	assert.Nil(t, out[2].Review)
}

func TestAttachReviewsNoMatches(t *testing.T) {
	past := []model.Appointment{appt(1, "2025-01-10", "09:00:00")}

	out := AttachReviews(past, []model.Review{{AppointmentID: 99, Rating: 3}})

	require.Len(t, out, 1)
	assert.Nil(t, out[0].Review)
}

func TestAttachReviewsDuplicateKeepsFirst(t *testing.T) {
	past := []model.Appointment{appt(1, "2025-01-10", "09:00:00")}
	reviews := []model.Review{
		{AppointmentID: 1, Rating: 4, Comment: "first"},
		{AppointmentID: 1, Rating: 1, Comment: "second"},
	}

	out := AttachReviews(past, reviews)

	require.NotNil(t, out[0].Review)
	assert.Equal(t, "first", out[0].Review.Comment)
}

func TestAttachReviewsPreservesOrderAndLength(t *testing.T) {
	past := []model.Appointment{
		appt(3, "2025-01-12", "09:00:00"),
		appt(1, "2025-01-10", "09:00:00"),
		appt(2, "2025-01-11", "09:00:00"),
	}

	out := AttachReviews(past, nil)

	assert.Equal(t, ids(past), ids(out))
}
