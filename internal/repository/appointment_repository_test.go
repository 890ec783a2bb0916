package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/autoservice/workshop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(id, date, tm string) model.Appointment {
	return model.Appointment{ID: id, Date: date, Time: tm, CarBrand: "Toyota", CarModel: "Camry"}
}

func TestAppointmentRepository_AddKeepsInsertionOrder(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("2", "2024-01-11", "10:00")))
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))
	require.NoError(t, r.Add(newAppointment("3", "2024-01-10", "09:00")))

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
	assert.Equal(t, "3", list[2].ID, "double booking is allowed")
}

func TestAppointmentRepository_AddValidation(t *testing.T) {
	r := NewAppointmentRepository()

	err := r.Add(model.Appointment{ID: "1", CarBrand: "BMW"})
	require.ErrorIs(t, err, model.ErrValidation)

	err = r.Add(model.Appointment{ID: "2", CarModel: "X5"})
	require.ErrorIs(t, err, model.ErrValidation)

	assert.Equal(t, 0, r.Len())
}

func TestAppointmentRepository_Update(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))

	ok := r.Update("1", model.AppointmentPatch{Notes: model.StringPtr("oil change")})
	require.True(t, ok)

	got, found := r.Get("1")
	require.True(t, found)
	assert.Equal(t, "oil change", model.Deref(got.Notes))

	assert.False(t, r.Update("missing", model.AppointmentPatch{Notes: model.StringPtr("x")}))
	assert.Equal(t, 1, r.Len())
}

func TestAppointmentRepository_SetStatusToggles(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))

	steps := []struct {
		apply model.AppointmentStatus
		want  model.AppointmentStatus
	}{
		{model.StatusArrived, model.StatusArrived},
		{model.StatusArrived, model.StatusUnset},
		{model.StatusMissed, model.StatusMissed},
		{model.StatusArrived, model.StatusArrived},
		{model.StatusArrived, model.StatusUnset},
	}

	for _, s := range steps {
		require.True(t, r.SetStatus("1", s.apply))
		got, _ := r.Get("1")
		assert.Equal(t, s.want, got.Status)
	}

	assert.False(t, r.SetStatus("missing", model.StatusMissed))
}

func TestAppointmentRepository_Remove(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))
	require.NoError(t, r.Add(newAppointment("2", "2024-01-10", "09:30")))

	assert.True(t, r.Remove("1"))
	assert.False(t, r.Remove("1"))

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, "2", list[0].ID)
}

func TestAppointmentRepository_ReplaceAllAndSnapshots(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))

	next := []model.Appointment{
		newAppointment("a", "2024-02-01", "10:00"),
		{ID: "b", Date: "2024-02-01", Time: "07:15"},
	}
	r.ReplaceAll(next)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID, "replace does not validate records")

	list[0].CarBrand = "changed"
	next[1].ID = "changed"
	got := r.List()
	assert.Equal(t, "Toyota", got[0].CarBrand)
	assert.Equal(t, "b", got[1].ID)
}

func TestAppointmentRepository_Replace(t *testing.T) {
	r := NewAppointmentRepository()
	require.NoError(t, r.Add(newAppointment("1", "2024-01-10", "09:00")))
	require.NoError(t, r.Add(newAppointment("2", "2024-01-25", "09:00")))

	r.Replace(func(current []model.Appointment) []model.Appointment {
		require.Len(t, current, 2)
		current[0].CarBrand = "changed"
		return append(current[:1], newAppointment("3", "2024-02-01", "10:00"))
	})

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "changed", list[0].CarBrand)
	assert.Equal(t, "3", list[1].ID)
}

func TestAppointmentRepository_ReplaceIsAtomicWithAdd(t *testing.T) {
	r := NewAppointmentRepository()

	const n = 500
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_ = r.Add(newAppointment(fmt.Sprintf("a-%d", i), "2024-01-01", "09:00"))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			r.Replace(func(current []model.Appointment) []model.Appointment {
				return current
			})
		}
	}()
	wg.Wait()

	assert.Equal(t, n, r.Len())
}
