package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/autoservice/workshop/internal/model"
)

// CarRepository хранит каталог марок и моделей.
// Удаление марки или модели не затрагивает существующие записи.
type CarRepository struct {
	mu   sync.RWMutex
	cars []model.Car
}

func NewCarRepository(cars []model.Car) *CarRepository {
	r := &CarRepository{}
	for _, c := range cars {
		r.cars = append(r.cars, model.Car{Brand: c.Brand, Models: append([]string(nil), c.Models...)})
	}
	return r
}

// AddBrand добавляет марку. Марка, уже существующая без учёта регистра, не дублируется.
func (r *CarRepository) AddBrand(brand string) (bool, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return false, fmt.Errorf("%w: brand name is empty", model.ErrCatalog)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cars {
		if strings.EqualFold(c.Brand, brand) {
			return false, nil
		}
	}

	r.cars = append(r.cars, model.Car{Brand: brand, Models: []string{}})
	return true, nil
}

// AddModel добавляет модель к марке, повторное добавление игнорируется
func (r *CarRepository) AddModel(brand, carModel string) (bool, error) {
	carModel = strings.TrimSpace(carModel)
	if carModel == "" {
		return false, fmt.Errorf("%w: model name is empty", model.ErrCatalog)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(brand)
	if i < 0 {
		return false, fmt.Errorf("%w: unknown brand %q", model.ErrCatalog, brand)
	}

	for _, m := range r.cars[i].Models {
		if m == carModel {
			return false, nil
		}
	}

	r.cars[i].Models = append(r.cars[i].Models, carModel)
	return true, nil
}

// DeleteBrand удаляет марку вместе с её моделями
func (r *CarRepository) DeleteBrand(brand string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(brand)
	if i < 0 {
		return false
	}
	r.cars = append(r.cars[:i], r.cars[i+1:]...)
	return true
}

// DeleteModel удаляет модель марки
func (r *CarRepository) DeleteModel(brand, carModel string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(brand)
	if i < 0 {
		return false
	}

	models := r.cars[i].Models
	for j, m := range models {
		if m == carModel {
			r.cars[i].Models = append(models[:j:j], models[j+1:]...)
			return true
		}
	}
	return false
}

// List возвращает каталог, отсортированный по марке
func (r *CarRepository) List() []model.Car {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Car, len(r.cars))
	for i, c := range r.cars {
		result[i] = model.Car{Brand: c.Brand, Models: append([]string{}, c.Models...)}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Brand) < strings.ToLower(result[j].Brand)
	})
	return result
}

// Models возвращает модели марки в порядке добавления
func (r *CarRepository) Models(brand string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(brand)
	if i < 0 {
		return nil
	}
	return append([]string{}, r.cars[i].Models...)
}

// Options возвращает отсортированный список "Марка Модель" для выбора автомобиля
func (r *CarRepository) Options() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var options []string
	for _, c := range r.cars {
		for _, m := range c.Models {
			options = append(options, c.Brand+" "+m)
		}
	}
	sort.Strings(options)
	return options
}

func (r *CarRepository) indexOf(brand string) int {
	for i, c := range r.cars {
		if c.Brand == brand {
			return i
		}
	}
	return -1
}
