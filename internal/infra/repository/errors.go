package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/domain/hr"
)

// mapError translates gorm sentinels into domain sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hr.ErrNotFound
	}
	return err
}

// mapUserError additionally folds unique violations into ErrEmailTaken.
// users.email is the only unique column outside primary keys.
func mapUserError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", hr.ErrEmailTaken, err)
	}
	return mapError(err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	// sqlite drivers that do not implement gorm's error translator
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
