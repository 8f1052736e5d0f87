package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Errors returned by the services. Controllers map them to HTTP statuses.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrDuplicateLink    = errors.New("link already exists")
	ErrAlreadyExists    = errors.New("already exists")
	ErrKeyMismatch      = errors.New("key mismatch")
	ErrValidation       = errors.New("validation failed")
	ErrInUse            = errors.New("still referenced")
)

// notFound converts gorm's record-not-found into ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// exists reports whether any row of T matches the condition.
func exists[T any](tx *gorm.DB, query string, args ...any) (bool, error) {
	var n int64
	if err := tx.Model(new(T)).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// mustExist fails with ErrInvalidReference when no T row has the given id.
func mustExist[T any](tx *gorm.DB, what, query string, id int) error {
	ok, err := exists[T](tx, query, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %d does not exist", ErrInvalidReference, what, id)
	}
	return nil
}
