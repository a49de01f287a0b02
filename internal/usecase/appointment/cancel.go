package appointment

import (
	"context"
	"sync"

	domain "github.com/leandrogodoyn-star/Proyecto-estetica/internal/domain/appointment"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/httperr"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

type CancelAppointment struct {
	store store.Store
	mu    *sync.Mutex
}

func NewCancelAppointment(st store.Store, mu *sync.Mutex) *CancelAppointment {
	return &CancelAppointment{store: st, mu: mu}
}

// Execute faz o soft-delete: o registro nunca sai da coleção, só muda
// de status. Cancelar um registro já cancelado regrava o mesmo estado
// e também é sucesso.
func (uc *CancelAppointment) Execute(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	agenda := uc.store.Load(ctx)

	i := agenda.FindByID(id)
	if i < 0 {
		return httperr.ErrBusiness("appointment_not_found", "not found")
	}

	domain.Cancel(&agenda.Appointments[i])

	return uc.store.Save(ctx, agenda)
}
