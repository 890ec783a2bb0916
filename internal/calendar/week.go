package calendar

import (
	"time"

	"github.com/autoservice/workshop/internal/model"
)

const DaysInWeek = 7

// StartOfDay отбрасывает время суток, сохраняя зону
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate разбирает дату YYYY-MM-DD в указанной зоне
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(model.DateLayout, s, loc)
}

// FormatDate форматирует дату в YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// WeekOf возвращает 7 дат недели, содержащей date, начиная с понедельника
func WeekOf(date time.Time) []time.Time {
	day := StartOfDay(date)
	// time.Weekday: воскресенье = 0 ... суббота = 6
	monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))

	week := make([]time.Time, DaysInWeek)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// IsToday сравнивает календарные дни без учёта времени
func IsToday(date, now time.Time) bool {
	return SameDay(date, now.In(date.Location()))
}

// SameDay сравнивает календарные дни двух моментов в их зонах
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// PrevDay сдвигает дату на день назад
func PrevDay(date time.Time) time.Time {
	return date.AddDate(0, 0, -1)
}

// NextDay сдвигает дату на день вперёд
func NextDay(date time.Time) time.Time {
	return date.AddDate(0, 0, 1)
}

// Today возвращает начало текущего дня
func Today(now time.Time) time.Time {
	return StartOfDay(now)
}

// Navigator хранит выбранный в календаре день.
// Значение принадлежит вызывающему коду: каждый переход возвращает новый Navigator.
type Navigator struct {
	Selected time.Time
}

func NewNavigator(now time.Time) Navigator {
	return Navigator{Selected: Today(now)}
}

func (n Navigator) Prev() Navigator {
	return Navigator{Selected: PrevDay(n.Selected)}
}

func (n Navigator) Next() Navigator {
	return Navigator{Selected: NextDay(n.Selected)}
}

// Today возвращает выбор на текущий день
func (n Navigator) Today(now time.Time) Navigator {
	return NewNavigator(now)
}

// Select выбирает день недели
func (n Navigator) Select(date time.Time) Navigator {
	return Navigator{Selected: StartOfDay(date)}
}

// Week возвращает неделю выбранного дня
func (n Navigator) Week() []time.Time {
	return WeekOf(n.Selected)
}

// SelectedDate возвращает выбранный день в формате записей
func (n Navigator) SelectedDate() string {
	return FormatDate(n.Selected)
}

// ShowBackToToday сообщает, нужно ли предлагать возврат к сегодняшнему дню
func (n Navigator) ShowBackToToday(now time.Time) bool {
	return !IsToday(n.Selected, now)
}
