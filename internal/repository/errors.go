package repository

import "errors"

// ErrNotFound — типовая ошибка "записи нет", сравнивается через errors.Is,
// никакого сопоставления по тексту сообщения
var ErrNotFound = errors.New("запись не найдена")
