package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
)

type AppointmentStatus string

const (
	StatusUnset   AppointmentStatus = ""        // Ещё не отмечена
	StatusArrived AppointmentStatus = "arrived" // Клиент приехал
	StatusMissed  AppointmentStatus = "missed"  // Клиент не приехал
)

// IsSet сообщает, отмечена ли запись
func (s AppointmentStatus) IsSet() bool {
	return s != StatusUnset
}

// MarshalJSON пишет неотмеченный статус как null
func (s AppointmentStatus) MarshalJSON() ([]byte, error) {
	if s == StatusUnset {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON принимает строку или null, всё остальное считается неотмеченным
func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = StatusUnset
		return nil
	}
	*s = AppointmentStatus(raw)
	return nil
}

type Appointment struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM
	CarBrand    string            `json:"carBrand"`
	CarModel    string            `json:"carModel"`
	PlateNumber *string           `json:"plateNumber,omitempty"` // nil - номер не указан
	Color       *string           `json:"color,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Status      AppointmentStatus `json:"status"`
}

// Validate проверяет обязательные поля записи
func (a Appointment) Validate() error {
	if strings.TrimSpace(a.CarBrand) == "" {
		return validationError("car brand is required")
	}
	if strings.TrimSpace(a.CarModel) == "" {
		return validationError("car model is required")
	}
	return nil
}

// StartsAt возвращает дату и время записи в указанной зоне
func (a Appointment) StartsAt(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateTimeLayout, a.Date+"T"+a.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day возвращает начало календарного дня записи
func (a Appointment) Day(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, a.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clone возвращает копию записи, не разделяющую указатели с оригиналом
func (a Appointment) Clone() Appointment {
	a.PlateNumber = clonePtr(a.PlateNumber)
	a.Color = clonePtr(a.Color)
	a.Notes = clonePtr(a.Notes)
	return a
}

// UnmarshalJSON читает запись из недоверенного источника (файл бэкапа).
// Отсутствующие поля и поля неверного типа считаются незаданными,
// элемент, не являющийся объектом, даёт пустую запись.
func (a *Appointment) UnmarshalJSON(data []byte) error {
	*a = Appointment{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	a.ID = rawString(fields["id"])
	a.Date = rawString(fields["date"])
	a.Time = rawString(fields["time"])
	a.CarBrand = rawString(fields["carBrand"])
	a.CarModel = rawString(fields["carModel"])
	a.PlateNumber = rawOptional(fields["plateNumber"])
	a.Color = rawOptional(fields["color"])
	a.Notes = rawOptional(fields["notes"])

	if raw, ok := fields["status"]; ok {
		_ = a.Status.UnmarshalJSON(raw)
	}

	return nil
}

func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func rawOptional(raw json.RawMessage) *string {
	s := rawString(raw)
	if s == "" {
		return nil
	}
	return &s
}

// AppointmentPatch описывает изменение записи; nil означает "не менять",
// указатель на пустую строку очищает необязательное поле
type AppointmentPatch struct {
	Date        *string
	Time        *string
	CarBrand    *string
	CarModel    *string
	PlateNumber *string
	Color       *string
	Notes       *string
}

// Apply применяет изменения к копии записи
func (p AppointmentPatch) Apply(a Appointment) Appointment {
	a = a.Clone()
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.CarBrand != nil {
		a.CarBrand = *p.CarBrand
	}
	if p.CarModel != nil {
		a.CarModel = *p.CarModel
	}
	if p.PlateNumber != nil {
		a.PlateNumber = OptionalString(*p.PlateNumber)
	}
	if p.Color != nil {
		a.Color = OptionalString(*p.Color)
	}
	if p.Notes != nil {
		a.Notes = OptionalString(*p.Notes)
	}
	return a
}

// StringPtr возвращает указатель на строку
func StringPtr(s string) *string {
	return &s
}

// OptionalString превращает пустую строку в nil
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref возвращает значение строки или пустую строку для nil
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
