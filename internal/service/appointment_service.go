package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/autoservice/workshop/internal/clients"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingTime подставляется, если запись создаётся без выбранного слота
const DefaultBookingTime = "09:00"

// BookingRequest - поля новой записи из формы
type BookingRequest struct {
	Date        string
	Time        string
	CarBrand    string
	CarModel    string
	PlateNumber string
	Color       string
	Notes       string
}

// ClientPatch - изменение автомобиля клиента, применяется ко всем его записям
type ClientPatch struct {
	CarBrand    string
	CarModel    string
	PlateNumber string
	Color       string
}

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	logger          *zap.Logger
}

func NewAppointmentService(appointmentRepo *repository.AppointmentRepository, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Book создаёт новую запись. Двойная запись на одно время допускается.
func (s *AppointmentService) Book(req BookingRequest) (*model.Appointment, error) {
	// Без выбранного слота записываем на начало дня
	tm := req.Time
	if tm == "" {
		tm = DefaultBookingTime
	}

	// Создаём запись, статус пока не отмечен
	appointment := model.Appointment{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Time:        tm,
		CarBrand:    req.CarBrand,
		CarModel:    req.CarModel,
		PlateNumber: model.OptionalString(req.PlateNumber),
		Color:       model.OptionalString(req.Color),
		Notes:       model.OptionalString(req.Notes),
		Status:      model.StatusUnset,
	}

	// Сохраняем, хранилище само проверяет обязательные поля
	if err := s.appointmentRepo.Add(appointment); err != nil {
		s.logger.Warn("Booking rejected",
			zap.String("date", req.Date),
			zap.String("time", tm),
			zap.Error(err))
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", appointment.ID),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time),
		zap.String("client_id", clients.KeyOf(appointment)))

	return &appointment, nil
}

// Edit меняет поля записи. Правка удалённой записи молча игнорируется.
func (s *AppointmentService) Edit(id string, patch model.AppointmentPatch) error {
	// Получаем текущую запись
	current, ok := s.appointmentRepo.Get(id)
	if !ok {
		s.logger.Debug("Edit of unknown appointment ignored", zap.String("appointment_id", id))
		return nil
	}

	// Проверяем что после правки марка и модель на месте
	if err := patch.Apply(current).Validate(); err != nil {
		return fmt.Errorf("edit appointment: %w", err)
	}

	if !s.appointmentRepo.Update(id, patch) {
		s.logger.Debug("Appointment disappeared during edit", zap.String("appointment_id", id))
		return nil
	}

	s.logger.Info("Appointment updated", zap.String("appointment_id", id))
	return nil
}

// ToggleStatus отмечает приезд или неявку; повторная отметка снимает статус
func (s *AppointmentService) ToggleStatus(id string, status model.AppointmentStatus) {
	if !s.appointmentRepo.SetStatus(id, status) {
		s.logger.Debug("Status change of unknown appointment ignored",
			zap.String("appointment_id", id),
			zap.String("status", string(status)))
		return
	}

	s.logger.Info("Appointment status toggled",
		zap.String("appointment_id", id),
		zap.String("status", string(status)))
}

// Delete удаляет запись
func (s *AppointmentService) Delete(id string) {
	if !s.appointmentRepo.Remove(id) {
		s.logger.Debug("Delete of unknown appointment ignored", zap.String("appointment_id", id))
		return
	}
	s.logger.Info("Appointment deleted", zap.String("appointment_id", id))
}

// EditClient переписывает автомобиль клиента во всех его записях.
// Возвращает число изменённых записей.
func (s *AppointmentService) EditClient(clientID string, patch ClientPatch, loc *time.Location) (int, error) {
	// Проверяем что новые марка и модель заполнены
	if strings.TrimSpace(patch.CarBrand) == "" || strings.TrimSpace(patch.CarModel) == "" {
		return 0, fmt.Errorf("edit client: %w: car brand and model are required", model.ErrValidation)
	}

	// Находим клиента среди пересобранных из записей
	client, ok := clients.Find(clients.Aggregate(s.appointmentRepo.List(), loc), clientID)
	if !ok {
		s.logger.Debug("Edit of unknown client ignored", zap.String("client_id", clientID))
		return 0, nil
	}

	update := model.AppointmentPatch{
		CarBrand:    model.StringPtr(patch.CarBrand),
		CarModel:    model.StringPtr(patch.CarModel),
		PlateNumber: model.StringPtr(patch.PlateNumber),
		Color:       model.StringPtr(patch.Color),
	}

	// Переписываем автомобиль в каждой записи клиента
	updated := 0
	for _, a := range client.Appointments {
		if s.appointmentRepo.Update(a.ID, update) {
			updated++
		}
	}

	s.logger.Info("Client updated",
		zap.String("client_id", clientID),
		zap.Int("appointments", updated))

	return updated, nil
}

// List возвращает снимок всех записей
func (s *AppointmentService) List() []model.Appointment {
	return s.appointmentRepo.List()
}
