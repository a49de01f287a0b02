package appointment

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/httperr"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "appointments.json"), zap.NewNop())
	require.NoError(t, st.EnsureInitialized(context.Background()))
	return st
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Service:      "corte",
		ServiceName:  "Corte feminino",
		ServicePrice: "45",
		Date:         "2024-05-01",
		Time:         "10:00",
		Name:         "Ana",
		Phone:        "555-0001",
	}
}

func TestCreateAppointment(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	uc := NewCreateAppointment(st, &mu)
	ctx := context.Background()

	ap, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "confirmado", ap.Status)
	assert.NotEmpty(t, ap.CreatedAt)

	// persistido em ordem de inserção
	agenda := st.Load(ctx)
	require.Len(t, agenda.Appointments, 1)
	assert.Equal(t, ap.ID, agenda.Appointments[0].ID)

	second, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)
	assert.NotEqual(t, ap.ID, second.ID)
	assert.Len(t, st.Load(ctx).Appointments, 2)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	uc := NewCreateAppointment(st, &mu)
	ctx := context.Background()

	t.Run("single missing field is named", func(t *testing.T) {
		in := validInput()
		in.Phone = ""
		_, err := uc.Execute(ctx, in)
		require.Error(t, err)

		be, ok := httperr.AsBusiness(err)
		require.True(t, ok)
		assert.Equal(t, "missing_field", be.Code)
		assert.Equal(t, "missing required field: phone", be.Message)
	})

	t.Run("first in fixed order wins", func(t *testing.T) {
		in := validInput()
		in.Date = ""
		in.Name = ""
		in.Phone = ""
		_, err := uc.Execute(ctx, in)
		require.Error(t, err)

		be, _ := httperr.AsBusiness(err)
		assert.Equal(t, "missing required field: date", be.Message)
	})

	t.Run("nothing persisted on failure", func(t *testing.T) {
		assert.Empty(t, st.Load(ctx).Appointments)
	})
}

func TestListBusySlots(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	createUC := NewCreateAppointment(st, &mu)
	cancelUC := NewCancelAppointment(st, &mu)
	busyUC := NewListBusySlots(st)
	ctx := context.Background()

	first, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Time = "11:00"
	in.Name = "Bia"
	_, err = createUC.Execute(ctx, in)
	require.NoError(t, err)

	other := validInput()
	other.Date = "2024-06-15"
	_, err = createUC.Execute(ctx, other)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00", "11:00"}, busyUC.Execute(ctx, "2024-05-01"))

	t.Run("duplicates are kept", func(t *testing.T) {
		dup := validInput()
		dup.Name = "Carla"
		_, err := createUC.Execute(ctx, dup)
		require.NoError(t, err)

		assert.Equal(t, []string{"10:00", "11:00", "10:00"}, busyUC.Execute(ctx, "2024-05-01"))
	})

	t.Run("cancelled slots disappear", func(t *testing.T) {
		require.NoError(t, cancelUC.Execute(ctx, first.ID))
		assert.Equal(t, []string{"11:00", "10:00"}, busyUC.Execute(ctx, "2024-05-01"))
	})

	t.Run("no matches is an empty slice", func(t *testing.T) {
		assert.Equal(t, []string{}, busyUC.Execute(ctx, "1999-01-01"))
	})
}

func TestCancelAppointment(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	createUC := NewCreateAppointment(st, &mu)
	cancelUC := NewCancelAppointment(st, &mu)
	listUC := NewListAllAppointments(st)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, cancelUC.Execute(ctx, ap.ID))

	// soft-delete: some do busy, continua no listAll
	all := listUC.Execute(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "cancelado", all[0].Status)

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, cancelUC.Execute(ctx, ap.ID))
		assert.Equal(t, "cancelado", listUC.Execute(ctx)[0].Status)
	})

	t.Run("unknown id leaves collection unchanged", func(t *testing.T) {
		err := cancelUC.Execute(ctx, "nope")
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
		assert.Len(t, listUC.Execute(ctx), 1)
	})
}

func TestListTodayAppointments(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	createUC := NewCreateAppointment(st, &mu)
	cancelUC := NewCancelAppointment(st, &mu)
	todayUC := NewListTodayAppointments(st)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	todayUC.now = func() time.Time { return fixed }
	ctx := context.Background()

	mk := func(date, hhmm, name string) string {
		in := validInput()
		in.Date = date
		in.Time = hhmm
		in.Name = name
		ap, err := createUC.Execute(ctx, in)
		require.NoError(t, err)
		return ap.ID
	}

	mk("2024-05-01", "14:00", "Ana")
	mk("2024-05-01", "09:30", "Bia")
	mk("2024-05-02", "08:00", "Carla")
	cancelled := mk("2024-05-01", "11:00", "Duda")
	require.NoError(t, cancelUC.Execute(ctx, cancelled))

	out := todayUC.Execute(ctx)
	require.Len(t, out, 2)

	// só confirmados de hoje, ordenados por horário
	assert.Equal(t, "09:30", out[0].Time)
	assert.Equal(t, "Bia", out[0].Name)
	assert.Equal(t, "14:00", out[1].Time)
	assert.Equal(t, "Ana", out[1].Name)
}

func TestListAllIncludesCancelled(t *testing.T) {
	st := newTestStore(t)
	var mu sync.Mutex
	createUC := NewCreateAppointment(st, &mu)
	cancelUC := NewCancelAppointment(st, &mu)
	listUC := NewListAllAppointments(st)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Time = "12:00"
	_, err = createUC.Execute(ctx, in)
	require.NoError(t, err)

	require.NoError(t, cancelUC.Execute(ctx, ap.ID))

	all := listUC.Execute(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, ap.ID, all[0].ID)
	assert.Equal(t, "cancelado", all[0].Status)
	assert.Equal(t, "confirmado", all[1].Status)
}
