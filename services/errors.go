package services

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// translate maps gorm's missing-row error onto the domain error for entity.
func translate(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}
