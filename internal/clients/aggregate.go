package clients

import (
	"sort"
	"strings"
	"time"

	"github.com/autoservice/workshop/internal/model"
)

// Aggregate группирует записи по клиентам.
// Клиенты идут в порядке первого появления, записи каждого клиента
// отсортированы по дате и времени.
func Aggregate(appointments []model.Appointment, loc *time.Location) []model.Client {
	index := make(map[string]int)
	var result []model.Client

	for _, a := range appointments {
		a = a.Clone()
		key := KeyOf(a)
		i, ok := index[key]
		if !ok {
			i = len(result)
			index[key] = i
			result = append(result, model.Client{
				ID:          key,
				CarBrand:    a.CarBrand,
				CarModel:    a.CarModel,
				PlateNumber: model.OptionalString(model.Deref(a.PlateNumber)),
				Color:       model.OptionalString(model.Deref(a.Color)),
			})
		}
		result[i].Appointments = append(result[i].Appointments, a)
	}

	for i := range result {
		SortAppointments(result[i].Appointments, loc)
	}

	return result
}

// SortAppointments сортирует записи по возрастанию даты и времени.
// Записи с нечитаемой датой уходят в конец, сохраняя исходный порядок.
func SortAppointments(appointments []model.Appointment, loc *time.Location) {
	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make(map[string]keyed, len(appointments))
	keyOf := func(a model.Appointment) keyed {
		k := a.Date + "T" + a.Time
		if v, ok := keys[k]; ok {
			return v
		}
		at, ok := a.StartsAt(loc)
		keys[k] = keyed{at: at, ok: ok}
		return keys[k]
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		a, b := keyOf(appointments[i]), keyOf(appointments[j])
		if a.ok != b.ok {
			return a.ok
		}
		return a.ok && a.at.Before(b.at)
	})
}

// Find ищет клиента по ключу
func Find(clients []model.Client, id string) (model.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.Client{}, false
}

// SortByBrand упорядочивает клиентов по марке и модели для отображения
func SortByBrand(clients []model.Client) {
	sort.SliceStable(clients, func(i, j int) bool {
		bi, bj := strings.ToLower(clients[i].CarBrand), strings.ToLower(clients[j].CarBrand)
		if bi != bj {
			return bi < bj
		}
		return strings.ToLower(clients[i].CarModel) < strings.ToLower(clients[j].CarModel)
	})
}

// Search отбирает клиентов, у которых марка, модель, номер или цвет
// содержат строку поиска без учёта регистра
func Search(clients []model.Client, query string) []model.Client {
	if query == "" {
		return clients
	}

	q := strings.ToLower(query)
	var result []model.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.CarBrand), q) ||
			strings.Contains(strings.ToLower(c.CarModel), q) ||
			strings.Contains(strings.ToLower(model.Deref(c.PlateNumber)), q) ||
			strings.Contains(strings.ToLower(model.Deref(c.Color)), q) {
			result = append(result, c)
		}
	}
	return result
}

// ActiveCount считает предстоящие записи клиента (начиная с now включительно)
func ActiveCount(client model.Client, now time.Time) int {
	count := 0
	for _, a := range client.Appointments {
		at, ok := a.StartsAt(now.Location())
		if ok && !at.Before(now) {
			count++
		}
	}
	return count
}
