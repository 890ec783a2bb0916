// Package calendar строит сетку записи на день и навигацию по неделям.
package calendar

import (
	"fmt"

	"github.com/autoservice/workshop/internal/model"
)

const (
	firstSlotHour = 9
	lastSlotHour  = 20
)

// Slots возвращает сетку записи: с 09:00 до 20:00 включительно через 30 минут.
// Слота 20:30 нет.
func Slots() []string {
	slots := make([]string, 0, (lastSlotHour-firstSlotHour)*2+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < lastSlotHour {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}

// IsSlot сообщает, попадает ли время в сетку
func IsSlot(tm string) bool {
	for _, s := range Slots() {
		if s == tm {
			return true
		}
	}
	return false
}

// BucketByTime раскладывает записи одного дня по слотам.
// Записи со временем вне сетки в календаре не показываются, но из
// хранилища никуда не пропадают.
func BucketByTime(dayAppointments []model.Appointment) map[string][]model.Appointment {
	buckets := make(map[string][]model.Appointment)
	for _, slot := range Slots() {
		buckets[slot] = nil
	}

	for _, a := range dayAppointments {
		if _, ok := buckets[a.Time]; !ok {
			continue
		}
		buckets[a.Time] = append(buckets[a.Time], a)
	}

	for slot, list := range buckets {
		if list == nil {
			delete(buckets, slot)
		}
	}
	return buckets
}

// OffGrid возвращает записи дня, которые не попали ни в один слот
func OffGrid(dayAppointments []model.Appointment) []model.Appointment {
	var result []model.Appointment
	for _, a := range dayAppointments {
		if !IsSlot(a.Time) {
			result = append(result, a)
		}
	}
	return result
}
