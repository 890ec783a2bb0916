package repository

import (
	"fmt"
	"sync"

	"github.com/autoservice/workshop/internal/model"
)

// AppointmentRepository - единственный источник истины о записях.
// Порядок хранения совпадает с порядком добавления.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments []model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Add добавляет запись в конец списка
func (r *AppointmentRepository) Add(appointment model.Appointment) error {
	if err := appointment.Validate(); err != nil {
		return fmt.Errorf("add appointment: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, appointment.Clone())
	return nil
}

// Get получает запись по ID
func (r *AppointmentRepository) Get(id string) (model.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appointments {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return model.Appointment{}, false
}

// Update применяет изменения к записи. Неизвестный ID игнорируется:
// интерфейс может прислать правку уже удалённой записи.
func (r *AppointmentRepository) Update(id string, patch model.AppointmentPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i] = patch.Apply(r.appointments[i])
			found = true
		}
	}
	return found
}

// SetStatus переключает статус: повторная установка того же статуса сбрасывает его
func (r *AppointmentRepository) SetStatus(id string, status model.AppointmentStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for i := range r.appointments {
		if r.appointments[i].ID != id {
			continue
		}
		if r.appointments[i].Status == status {
			r.appointments[i].Status = model.StatusUnset
		} else {
			r.appointments[i].Status = status
		}
		found = true
	}
	return found
}

// Remove удаляет запись, отсутствие записи не ошибка
func (r *AppointmentRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.appointments[:0]
	removed := false
	for _, a := range r.appointments {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённые записи
	for i := len(kept); i < len(r.appointments); i++ {
		r.appointments[i] = model.Appointment{}
	}
	r.appointments = kept
	return removed
}

// ReplaceAll целиком заменяет содержимое хранилища (используется восстановлением)
func (r *AppointmentRepository) ReplaceAll(appointments []model.Appointment) {
	next := cloneAll(appointments)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = next
}

// Replace заменяет содержимое результатом fn под одной блокировкой.
// fn получает копию текущих записей и не должна обращаться к хранилищу.
func (r *AppointmentRepository) Replace(fn func(current []model.Appointment) []model.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = cloneAll(fn(cloneAll(r.appointments)))
}

// List возвращает снимок всех записей
func (r *AppointmentRepository) List() []model.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAll(r.appointments)
}

func (r *AppointmentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appointments)
}

func cloneAll(appointments []model.Appointment) []model.Appointment {
	result := make([]model.Appointment, len(appointments))
	for i, a := range appointments {
		result[i] = a.Clone()
	}
	return result
}
