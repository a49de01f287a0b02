package appointment

import (
	"strconv"
	"time"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewInput carrega os campos fornecidos pelo cliente na criação.
type NewInput struct {
	Service      string
	ServiceName  string
	ServicePrice string
	Date         string
	Time         string
	Name         string
	Phone        string
	Email        string
	Comments     string
}

// New monta um Appointment completo a partir da entrada já validada:
// id e createdAt gerados aqui, status inicial confirmado.
func New(in NewInput, now time.Time) models.Appointment {
	return models.Appointment{
		ID:           NewID(now),
		Service:      in.Service,
		ServiceName:  in.ServiceName,
		ServicePrice: in.ServicePrice,
		Date:         in.Date,
		Time:         in.Time,
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Comments:     in.Comments,
		Status:       string(InitialStatus()),
		CreatedAt:    now.Format(time.RFC3339),
	}
}

// NewID gera um token derivado do relógio (UnixNano em base 36).
// Monotônico na prática; colisões são desprezíveis para um único processo.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 36)
}

// Cancel marca o agendamento como cancelado. A transição é monótona e
// idempotente: cancelar de novo mantém o mesmo estado, sem erro.
func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}
