package service

import (
	"time"

	"github.com/autoservice/workshop/internal/calendar"
	"github.com/autoservice/workshop/internal/clients"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"go.uber.org/zap"
)

type SlotEntry struct {
	Appointment model.Appointment
	Reliability model.Reliability
	Mark        model.SlotMark
}

type SlotView struct {
	Time         string
	Entries      []SlotEntry
	DoubleBooked bool
}

type DayView struct {
	Date    string
	Title   string
	IsToday bool
	Slots   []SlotView

	// OffGrid - записи дня со временем вне сетки; в сетке их нет
	OffGrid []model.Appointment
}

type WeekDay struct {
	Date       string
	ShortName  string
	DayOfMonth int
	IsToday    bool
	IsSelected bool
}

type CalendarService struct {
	appointmentRepo *repository.AppointmentRepository
	logger          *zap.Logger
}

func NewCalendarService(appointmentRepo *repository.AppointmentRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Day собирает сетку выбранного дня. Надёжность всех клиентов считается
// по одному now, чтобы календарь и список клиентов не расходились.
func (s *CalendarService) Day(date, now time.Time) DayView {
	dateStr := calendar.FormatDate(date)
	// Берём один снимок записей на всю отрисовку
	all := s.appointmentRepo.List()
	list := clients.Aggregate(all, now.Location())

	// Отбираем записи выбранного дня
	var dayAppointments []model.Appointment
	for _, a := range all {
		if a.Date == dateStr {
			dayAppointments = append(dayAppointments, a)
		}
	}

	buckets := calendar.BucketByTime(dayAppointments)
	view := DayView{
		Date:    dateStr,
		Title:   calendar.FormatFullDate(date),
		IsToday: calendar.IsToday(date, now),
		OffGrid: calendar.OffGrid(dayAppointments),
	}

	// Заполняем сетку, пустые слоты тоже показываем
	for _, slot := range calendar.Slots() {
		sv := SlotView{Time: slot}
		for _, a := range buckets[slot] {
			reliability := clients.ClassifyClient(list, clients.KeyOf(a), now)
			sv.Entries = append(sv.Entries, SlotEntry{
				Appointment: a,
				Reliability: reliability,
				Mark:        clients.Mark(a, reliability),
			})
		}
		sv.DoubleBooked = len(sv.Entries) > 1
		view.Slots = append(view.Slots, sv)
	}

	if len(view.OffGrid) > 0 {
		s.logger.Debug("Appointments outside of the slot grid",
			zap.String("date", dateStr),
			zap.Int("count", len(view.OffGrid)))
	}

	return view
}

// Week возвращает подписи недели, содержащей выбранный день
func (s *CalendarService) Week(selected, now time.Time) []WeekDay {
	var days []WeekDay
	for _, d := range calendar.WeekOf(selected) {
		days = append(days, WeekDay{
			Date:       calendar.FormatDate(d),
			ShortName:  calendar.GetWeekdayShortName(d.Weekday()),
			DayOfMonth: d.Day(),
			IsToday:    calendar.IsToday(d, now),
			IsSelected: calendar.SameDay(d, selected),
		})
	}
	return days
}
