package model

type Reliability string

const (
	ReliabilityReliable   Reliability = "reliable"
	ReliabilityUnreliable Reliability = "unreliable"
	ReliabilityNeutral    Reliability = "neutral" // Нет отмеченных прошлых визитов
)

// Client вычисляется из записей и нигде не хранится.
// Поля автомобиля берутся из первой встреченной записи группы.
type Client struct {
	ID           string        `json:"id"`
	CarBrand     string        `json:"carBrand"`
	CarModel     string        `json:"carModel"`
	PlateNumber  *string       `json:"plateNumber,omitempty"`
	Color        *string       `json:"color,omitempty"`
	Appointments []Appointment `json:"appointments"`
}
