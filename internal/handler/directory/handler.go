// Package directory serves the patient and doctor selectors every screen
// starts from, plus profile creation.
package directory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/portal-api/internal/handler"
	"github.com/careconnect/portal-api/internal/model"
	"github.com/careconnect/portal-api/internal/service/portal"
)

type Handler struct {
	service *portal.Service
}

func NewHandler(service *portal.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/patients", h.ListPatients)
	r.POST("/patients", h.CreatePatient)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.POST("/doctors", h.CreateDoctor)
}

func (h *Handler) ListPatients(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Patients(c.Request.Context())))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var form model.NewPatientForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	errs, created, err := h.service.CreatePatient(c.Request.Context(), &form)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, handler.NewValidationResponse(errs))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error creating patient."))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Doctors(c.Request.Context())))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	doctor, err := h.service.Doctor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, handler.NewErrorResponse("Error fetching doctor."))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

// CreateDoctor validates the doctor form. The scheduling backend exposes no
// doctor-creation endpoint, so a clean form is acknowledged as accepted.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var form model.NewDoctorForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if errs := h.service.CreateDoctor(c.Request.Context(), &form); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, handler.NewValidationResponse(errs))
		return
	}

	c.JSON(http.StatusAccepted, handler.NewSuccessResponse(form))
}
