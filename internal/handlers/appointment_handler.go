package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/httperr"
	ucAppointment "github.com/leandrogodoyn-star/Proyecto-estetica/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	cancelUC *ucAppointment.CancelAppointment
	listUC   *ucAppointment.ListAllAppointments
	busyUC   *ucAppointment.ListBusySlots
	todayUC  *ucAppointment.ListTodayAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAllAppointments,
	busyUC *ucAppointment.ListBusySlots,
	todayUC *ucAppointment.ListTodayAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		busyUC:   busyUC,
		todayUC:  todayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Sem tags binding:required aqui: a validação de presença é do usecase,
// que reporta o primeiro campo ausente na ordem fixa do contrato.
type CreateAppointmentRequest struct {
	Service      string `json:"service"`
	ServiceName  string `json:"serviceName"`
	ServicePrice string `json:"servicePrice"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Comments     string `json:"comments"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Service:      req.Service,
		ServiceName:  req.ServiceName,
		ServicePrice: req.ServicePrice,
		Date:         req.Date,
		Time:         req.Time,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Comments:     req.Comments,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
			return
		}
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": ap,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.listUC.Execute(c.Request.Context()))
}

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	c.JSON(http.StatusOK, h.todayUC.Execute(c.Request.Context()))
}

func (h *AppointmentHandler) BusySlots(c *gin.Context) {
	date := c.Param("date")

	c.JSON(http.StatusOK, gin.H{
		"busySlots": h.busyUC.Execute(c.Request.Context(), date),
	})
}

// ======================================================
// CANCEL (soft-delete)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	if err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "not found")
			return
		}
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
