package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// translateError maps driver and gorm failures onto the domain sentinels,
// keeping the original error in the chain for logging.
func translateError(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", action, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %s", action, domain.ErrConflict, pqErr.Detail)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: referenced record does not exist", action, domain.ErrValidation)
		case pqCheckViolation:
			return fmt.Errorf("%s: %w: constraint violation: %s", action, domain.ErrValidation, pqErr.Message)
		}
		if pqErr.Code.Class() == "08" {
			return fmt.Errorf("%s: %w: %v", action, domain.ErrUnavailable, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%s: %w", action, domain.ErrConflict)
	case strings.Contains(msg, "foreign key constraint failed"):
		return fmt.Errorf("%s: %w: referenced record does not exist", action, domain.ErrValidation)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w: %v", action, domain.ErrUnavailable, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}
