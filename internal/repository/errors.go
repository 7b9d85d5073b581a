package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an entity does not exist or is owned by
	// a different user. Ownership misses deliberately read as not-found so
	// the API never leaks that another user's record exists.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a store uniqueness constraint rejects a
	// write, e.g. a second profile for the same user.
	ErrConflict = errors.New("entity conflicts with an existing one")

	// ErrNilEntity flags a programmer error: a required entity argument
	// was nil.
	ErrNilEntity = errors.New("entity must not be nil")
)

// translate maps GORM errors onto the repository taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// normalizePage coerces invalid paging arguments to sane values: page
// numbers start at 1 and the page size defaults to 10.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}
