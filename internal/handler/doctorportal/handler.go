// Package doctorportal serves the doctor screen: the dashboard with its
// filtered, paginated appointment lists, status transitions and the
// patient-tracking history panel.
package doctorportal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/portal-api/internal/handler"
	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/screen"
	"github.com/careconnect/portal-api/internal/service/portal"
)

// HeaderScreenID identifies a live screen across requests.
const HeaderScreenID = "X-Screen-ID"

type Handler struct {
	service *portal.Service
	screens *screen.Registry
}

func NewHandler(service *portal.Service, screens *screen.Registry) *Handler {
	return &Handler{service: service, screens: screens}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctors/:id/dashboard", h.Dashboard)
	r.PATCH("/appointments/:id/status", h.ChangeStatus)
	r.GET("/doctors/:id/patients/:patientId/history", h.PatientHistory)
}

func (h *Handler) acquire(c *gin.Context) *screen.DoctorScreen {
	s, id := h.screens.Doctor(c.GetHeader(HeaderScreenID))
	c.Header(HeaderScreenID, id)
	return s
}

// Dashboard selects the doctor on the screen (re-fetching only when the
// selection changed), applies the filter and page controls, and returns the
// derived view. Filter and page moves are local operations on the screen's
// state, they trigger no upstream calls.
func (h *Handler) Dashboard(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	s := h.acquire(c)
	if s.DoctorID() != doctorID {
		s.SelectDoctor(c.Request.Context(), doctorID)
	}

	if status := c.Query("status"); status != "" {
		s.SetStatusFilter(model.AppointmentStatus(status))
	}
	if page, err := strconv.Atoi(c.Query("futurePage")); err == nil {
		s.SetFuturePage(page)
	}
	if page, err := strconv.Atoi(c.Query("pastPage")); err == nil {
		s.SetPastPage(page)
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(s.Dashboard()))
}

// ChangeStatus transitions one appointment and settles the screen by
// re-fetching future, past and pending before answering.
func (h *Handler) ChangeStatus(c *gin.Context) {
	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var body struct {
		DoctorID int64                   `json:"doctorId"`
		Status   model.AppointmentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid status"))
		return
	}

	s := h.acquire(c)
	if s.DoctorID() != body.DoctorID && body.DoctorID != 0 {
		s.SelectDoctor(c.Request.Context(), body.DoctorID)
	}

	if err := s.ChangeStatus(c.Request.Context(), appointmentID, body.Status); err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error updating status."))
		return
	}

	resp := handler.NewSuccessResponse(s.Dashboard())
	resp.Message = "Appointment status updated!"
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PatientHistory(c *gin.Context) {
	doctorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	history := h.service.PatientHistory(c.Request.Context(), doctorID, patientID)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(history))
}
