package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	sharedErrors "github.com/civicdesk/civicdesk/internal/shared/errors"
)

const (
	mysqlDuplicateEntry     = 1062
	postgresUniqueViolation = "23505"
)

// IsDuplicateKey reports whether err is a unique-index violation on any supported driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation
	}

	// sqlite and wrapped errors
	return sharedErrors.IsDuplicateError(err)
}
