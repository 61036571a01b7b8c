package models

import "errors"

// ErrNotFound возвращается репозиториями, когда запись не существует
var ErrNotFound = errors.New("not found")

// ErrConflict возвращается при нарушении уникальности
var ErrConflict = errors.New("already exists")
