package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("resource already exists")
	ErrInvalidFilter  = errors.New("invalid filter")
	ErrEmptyUpdate    = errors.New("no fields to update")
	ErrBadCredentials = errors.New("invalid username or password")
)

// translate maps gorm errors onto the service sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
