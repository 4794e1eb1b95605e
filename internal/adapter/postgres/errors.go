package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

const (
	codeOutOfRange          = "22003"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

var uniqueMessages = map[string]string{
	"users_email_key":              "Email sudah terdaftar",
	"motorcycles_plate_number_key": "Nomor plat sudah terdaftar",
}

// mapError turns driver errors into domain errors. notFound is used for
// sql.ErrNoRows and for foreign key violations on the parent row.
func mapError(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(notFound)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		if msg, ok := uniqueMessages[pqErr.Constraint]; ok {
			return domain.NewConflictError(msg)
		}
		return domain.NewConflictError("Data sudah ada")
	case codeForeignKeyViolation:
		return domain.NewNotFoundError(notFound)
	case codeNotNullViolation:
		return domain.NewValidationError("Field " + pqErr.Column + " wajib diisi")
	case codeCheckViolation, codeOutOfRange:
		return domain.NewValidationError("Data tidak valid")
	}
	return err
}
