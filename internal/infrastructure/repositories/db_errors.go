package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	domainerrors "invest-portal.backend/internal/domain/errors"
)

// translateCreateError maps driver unique-violation errors to the domain
// DuplicateKey error. Uniqueness lives in the store (unique indexes), not in
// application checks, so this is the single place the violation surfaces.
func translateCreateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrDuplicateKey
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") { // postgres
		return domainerrors.ErrDuplicateKey
	}
	return err
}
