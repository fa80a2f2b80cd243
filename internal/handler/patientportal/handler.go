// Package patientportal serves the patient screen: the partitioned
// appointment lists, booking, cancellation and review submission. Screen
// state lives server-side in the registry, keyed by the X-Screen-ID header
// the client echoes back.
package patientportal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/portal-api/internal/handler"
	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/screen"
)

// HeaderScreenID identifies a live screen across requests.
const HeaderScreenID = "X-Screen-ID"

type Handler struct {
	screens *screen.Registry
}

func NewHandler(screens *screen.Registry) *Handler {
	return &Handler{screens: screens}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients/:id/appointments", h.Appointments)
	r.POST("/appointments", h.Book)
	r.POST("/appointments/:id/cancel", h.Cancel)
	r.POST("/reviews", h.SubmitReview)
}

func (h *Handler) acquire(c *gin.Context) *screen.PatientScreen {
	s, id := h.screens.Patient(c.GetHeader(HeaderScreenID))
	c.Header(HeaderScreenID, id)
	return s
}

// Appointments selects the patient on the screen (re-fetching when the
// selection changed) and returns the split, sorted lists.
func (h *Handler) Appointments(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	s := h.acquire(c)
	if s.PatientID() != patientID {
		s.SelectPatient(c.Request.Context(), patientID)
	}
	if tab := c.Query("tab"); tab != "" {
		s.SetTab(tab)
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(s.View()))
}

func (h *Handler) Book(c *gin.Context) {
	var form model.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	s := h.acquire(c)
	if s.PatientID() == 0 && form.PatientID != 0 {
		s.SelectPatient(c.Request.Context(), form.PatientID)
	}

	errs, err := s.Book(c.Request.Context(), &form)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, handler.NewValidationResponse(errs))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error booking appointment."))
		return
	}

	resp := handler.NewSuccessResponse(s.View())
	resp.Message = "Appointment booked successfully!"
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Cancel(c *gin.Context) {
	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var body struct {
		PatientID int64 `json:"patientId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	s := h.acquire(c)
	if s.PatientID() != body.PatientID && body.PatientID != 0 {
		s.SelectPatient(c.Request.Context(), body.PatientID)
	}

	if err := s.Cancel(c.Request.Context(), appointmentID); err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error cancelling appointment."))
		return
	}

	resp := handler.NewSuccessResponse(s.View())
	resp.Message = "Appointment cancelled."
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SubmitReview(c *gin.Context) {
	var form model.ReviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	s := h.acquire(c)
	if s.PatientID() != form.PatientID && form.PatientID != 0 {
		s.SelectPatient(c.Request.Context(), form.PatientID)
	}

	errs, err := s.SubmitReview(c.Request.Context(), &form)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, handler.NewValidationResponse(errs))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error submitting review."))
		return
	}

	resp := handler.NewSuccessResponse(s.View())
	resp.Message = "Review submitted successfully!"
	c.JSON(http.StatusCreated, resp)
}
