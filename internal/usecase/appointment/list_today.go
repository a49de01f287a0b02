package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/leandrogodoyn-star/Proyecto-estetica/internal/domain/appointment"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

type ListTodayAppointments struct {
	store store.Store
	// now é injetável nos testes; em produção é time.Now.
	now func() time.Time
}

func NewListTodayAppointments(st store.Store) *ListTodayAppointments {
	return &ListTodayAppointments{store: st, now: time.Now}
}

// Execute devolve os confirmados de hoje (data local do processo no
// momento da chamada), ordenados por horário. HH:MM tem largura fixa,
// então a ordenação lexicográfica basta.
func (uc *ListTodayAppointments) Execute(ctx context.Context) []models.Appointment {
	today := uc.now().Format("2006-01-02")
	agenda := uc.store.Load(ctx)

	out := []models.Appointment{}
	for _, ap := range agenda.Appointments {
		if ap.Date == today && ap.Status == string(domain.StatusConfirmed) {
			out = append(out, ap)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})

	return out
}
