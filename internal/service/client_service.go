package service

import (
	"time"

	"github.com/autoservice/workshop/internal/clients"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"go.uber.org/zap"
)

type ClientView struct {
	Client      model.Client
	Reliability model.Reliability
	ActiveCount int

	// Highlight - ненадёжный клиент с предстоящими записями
	Highlight bool
}

type ClientService struct {
	appointmentRepo *repository.AppointmentRepository
	logger          *zap.Logger
}

func NewClientService(appointmentRepo *repository.AppointmentRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// List возвращает клиентов, отфильтрованных строкой поиска и отсортированных по марке
func (s *ClientService) List(query string, now time.Time) []ClientView {
	// Собираем клиентов и сортируем для отображения
	list := clients.Aggregate(s.appointmentRepo.List(), now.Location())
	clients.SortByBrand(list)
	list = clients.Search(list, query)

	views := make([]ClientView, 0, len(list))
	for _, c := range list {
		// Ненадёжного клиента с предстоящими записями подсвечиваем
		reliability := clients.Classify(c.Appointments, now)
		active := clients.ActiveCount(c, now)
		views = append(views, ClientView{
			Client:      c,
			Reliability: reliability,
			ActiveCount: active,
			Highlight:   reliability == model.ReliabilityUnreliable && active > 0,
		})
	}

	s.logger.Debug("Clients listed",
		zap.String("query", query),
		zap.Int("count", len(views)))

	return views
}

// Reliability оценивает одного клиента по ключу
func (s *ClientService) Reliability(clientID string, now time.Time) model.Reliability {
	list := clients.Aggregate(s.appointmentRepo.List(), now.Location())
	return clients.ClassifyClient(list, clientID, now)
}
