package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/handlers"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
	ucAppointment "github.com/leandrogodoyn-star/Proyecto-estetica/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, st store.Store, log *zap.Logger) {

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================

	// Mutex único entre create e cancel: serializa o ciclo
	// load → mutate → save e elimina o last-write-wins no processo.
	var writeMu sync.Mutex

	createUC := ucAppointment.NewCreateAppointment(st, &writeMu)
	cancelUC := ucAppointment.NewCancelAppointment(st, &writeMu)
	listUC := ucAppointment.NewListAllAppointments(st)
	busyUC := ucAppointment.NewListBusySlots(st)
	todayUC := ucAppointment.NewListTodayAppointments(st)

	// ======================================================
	// HANDLERS
	// ======================================================

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		cancelUC,
		listUC,
		busyUC,
		todayUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================

	api := r.Group("/api")
	{
		api.GET("/appointments", appointmentHandler.ListAll)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/today", appointmentHandler.ListToday)
		api.GET("/appointments/busy/:date", appointmentHandler.BusySlots)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)
	}
}
