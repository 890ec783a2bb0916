package clients

import (
	"time"

	"github.com/autoservice/workshop/internal/model"
)

// Classify оценивает надёжность клиента по последнему отмеченному визиту до now.
// Неотмеченные и будущие записи не учитываются, более ранняя история тоже.
// Календарь и список клиентов должны передавать одно и то же now в рамках
// одной отрисовки.
func Classify(appointments []model.Appointment, now time.Time) model.Reliability {
	var (
		last    model.Appointment
		lastAt  time.Time
		hasLast bool
	)

	for _, a := range appointments {
		if !a.Status.IsSet() {
			continue
		}
		at, ok := a.StartsAt(now.Location())
		if !ok || !at.Before(now) {
			continue
		}
		if !hasLast || !at.Before(lastAt) {
			last, lastAt, hasLast = a, at, true
		}
	}

	if !hasLast {
		return model.ReliabilityNeutral
	}
	if last.Status == model.StatusMissed {
		return model.ReliabilityUnreliable
	}
	return model.ReliabilityReliable
}

// ClassifyClient ищет клиента по ключу и оценивает его; неизвестный клиент нейтрален
func ClassifyClient(clients []model.Client, id string, now time.Time) model.Reliability {
	c, ok := Find(clients, id)
	if !ok {
		return model.ReliabilityNeutral
	}
	return Classify(c.Appointments, now)
}

// Mark выбирает подсветку записи в календаре: отмеченная запись показывает
// свой статус, остальные записи ненадёжного клиента получают предупреждение.
// Неизвестный статус из бэкапа подсвечивается как неотмеченный.
func Mark(a model.Appointment, reliability model.Reliability) model.SlotMark {
	switch a.Status {
	case model.StatusArrived:
		return model.SlotMarkArrived
	case model.StatusMissed:
		return model.SlotMarkMissed
	}
	if reliability == model.ReliabilityUnreliable {
		return model.SlotMarkWarning
	}
	return model.SlotMarkNone
}
