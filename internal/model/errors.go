package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - не заполнены обязательные поля записи
	ErrValidation = errors.New("validation error")
	// ErrFormat - файл бэкапа не читается или не содержит массива записей
	ErrFormat = errors.New("invalid backup format")
	// ErrCatalog - некорректное изменение каталога автомобилей
	ErrCatalog = errors.New("invalid catalog change")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
