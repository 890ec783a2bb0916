package service

import (
	"fmt"

	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"go.uber.org/zap"
)

// CatalogService управляет справочником марок и моделей.
// Изменения справочника на записи не распространяются.
type CatalogService struct {
	carRepo *repository.CarRepository
	logger  *zap.Logger
}

func NewCatalogService(carRepo *repository.CarRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		carRepo: carRepo,
		logger:  logger,
	}
}

func (s *CatalogService) AddBrand(brand string) error {
	added, err := s.carRepo.AddBrand(brand)
	if err != nil {
		return fmt.Errorf("add brand: %w", err)
	}
	if added {
		s.logger.Info("Brand added", zap.String("brand", brand))
	}
	return nil
}

func (s *CatalogService) AddModel(brand, carModel string) error {
	added, err := s.carRepo.AddModel(brand, carModel)
	if err != nil {
		return fmt.Errorf("add model: %w", err)
	}
	if added {
		s.logger.Info("Model added", zap.String("brand", brand), zap.String("model", carModel))
	}
	return nil
}

func (s *CatalogService) DeleteBrand(brand string) {
	if s.carRepo.DeleteBrand(brand) {
		s.logger.Info("Brand deleted", zap.String("brand", brand))
	}
}

func (s *CatalogService) DeleteModel(brand, carModel string) {
	if s.carRepo.DeleteModel(brand, carModel) {
		s.logger.Info("Model deleted", zap.String("brand", brand), zap.String("model", carModel))
	}
}

func (s *CatalogService) Cars() []model.Car {
	return s.carRepo.List()
}

func (s *CatalogService) Models(brand string) []string {
	return s.carRepo.Models(brand)
}

func (s *CatalogService) Options() []string {
	return s.carRepo.Options()
}
