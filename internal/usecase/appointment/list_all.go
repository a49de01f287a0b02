package appointment

import (
	"context"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

type ListAllAppointments struct {
	store store.Store
}

func NewListAllAppointments(st store.Store) *ListAllAppointments {
	return &ListAllAppointments{store: st}
}

// Execute devolve a coleção completa em ordem de inserção, inclusive
// os cancelados.
func (uc *ListAllAppointments) Execute(ctx context.Context) []models.Appointment {
	return uc.store.Load(ctx).Appointments
}
