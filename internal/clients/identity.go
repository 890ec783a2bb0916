// Package clients вычисляет клиентов мастерской из истории записей.
// Клиент нигде не хранится: он пересобирается из текущего списка записей
// при каждом обращении.
package clients

import (
	"strings"
	"unicode"

	"github.com/autoservice/workshop/internal/model"
)

// NoColor подставляется в ключ клиента без номера и цвета.
// Значение совпадает с уже накопленной историей и не должно меняться.
const NoColor = "Без цвета"

// KeyOf возвращает ключ клиента для записи.
// Госномер сравнивается без учёта регистра и пробелов; без номера все
// записи с одинаковыми маркой, моделью и цветом считаются одним клиентом.
func KeyOf(a model.Appointment) string {
	if plate := model.Deref(a.PlateNumber); plate != "" {
		return NormalizePlate(plate)
	}

	color := model.Deref(a.Color)
	if color == "" {
		color = NoColor
	}
	return a.CarBrand + "|" + a.CarModel + "|" + color
}

// NormalizePlate приводит госномер к верхнему регистру и убирает все пробельные символы
func NormalizePlate(plate string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToUpper(plate))
}
