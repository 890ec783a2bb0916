package calendar

import (
	"fmt"
	"time"
)

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(weekday time.Weekday) string {
	names := []string{
		"Воскресенье",
		"Понедельник",
		"Вторник",
		"Среда",
		"Четверг",
		"Пятница",
		"Суббота",
	}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "Неизвестно"
}

// GetWeekdayShortName возвращает краткое название дня недели на русском
func GetWeekdayShortName(weekday time.Weekday) string {
	names := []string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}
	if weekday >= 0 && int(weekday) < len(names) {
		return names[weekday]
	}
	return "?"
}

// WeekdayShortNames - подписи колонок недели, с понедельника
func WeekdayShortNames() []string {
	return []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}
}

// GetMonthGenitive возвращает месяц в родительном падеже ("10 января")
func GetMonthGenitive(month time.Month) string {
	names := map[time.Month]string{
		time.January:   "января",
		time.February:  "февраля",
		time.March:     "марта",
		time.April:     "апреля",
		time.May:       "мая",
		time.June:      "июня",
		time.July:      "июля",
		time.August:    "августа",
		time.September: "сентября",
		time.October:   "октября",
		time.November:  "ноября",
		time.December:  "декабря",
	}
	return names[month]
}

// FormatFullDate форматирует заголовок дня: "Среда, 10 января 2024"
func FormatFullDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", GetWeekdayName(t.Weekday()), t.Day(), GetMonthGenitive(t.Month()), t.Year())
}
