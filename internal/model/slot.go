package model

// SlotMark - подсветка записи в сетке календаря
type SlotMark string

const (
	SlotMarkNone    SlotMark = "none"
	SlotMarkArrived SlotMark = "arrived"
	SlotMarkMissed  SlotMark = "missed"
	SlotMarkWarning SlotMark = "warning" // Не отмечена, а клиент ненадёжный
)
