package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/leandrogodoyn-star/Proyecto-estetica/internal/domain/appointment"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/httperr"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
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

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store store.Store
	mu    *sync.Mutex
}

// NewCreateAppointment recebe o mutex compartilhado com os demais
// usecases de escrita: é o ponto único de serialização do ciclo
// load → mutate → save dentro do processo.
func NewCreateAppointment(st store.Store, mu *sync.Mutex) *CreateAppointment {
	return &CreateAppointment{store: st, mu: mu}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if field := validators.FirstMissingField(map[string]string{
		"service": in.Service,
		"date":    in.Date,
		"time":    in.Time,
		"name":    in.Name,
		"phone":   in.Phone,
	}); field != "" {
		return nil, httperr.ErrBusiness("missing_field", "missing required field: "+field)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	agenda := uc.store.Load(ctx)

	ap := domain.New(domain.NewInput{
		Service:      in.Service,
		ServiceName:  in.ServiceName,
		ServicePrice: in.ServicePrice,
		Date:         in.Date,
		Time:         in.Time,
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Comments:     in.Comments,
	}, time.Now())

	agenda.Appointments = append(agenda.Appointments, ap)

	if err := uc.store.Save(ctx, agenda); err != nil {
		return nil, err
	}

	return &ap, nil
}
