package appointment

import (
	"context"

	domain "github.com/leandrogodoyn-star/Proyecto-estetica/internal/domain/appointment"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

type ListBusySlots struct {
	store store.Store
}

func NewListBusySlots(st store.Store) *ListBusySlots {
	return &ListBusySlots{store: st}
}

// Execute devolve os horários ocupados da data, em ordem de inserção.
// Não deduplica: dois pedidos para o mesmo horário aparecem duas vezes,
// e é o consumidor quem decide o que fazer com o conflito.
func (uc *ListBusySlots) Execute(ctx context.Context, date string) []string {
	agenda := uc.store.Load(ctx)

	slots := []string{}
	for _, ap := range agenda.Appointments {
		if ap.Date == date && domain.IsActive(domain.Status(ap.Status)) {
			slots = append(slots, ap.Time)
		}
	}
	return slots
}
