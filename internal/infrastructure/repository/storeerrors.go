package repository

import (
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"slotly/internal/shared/errors"
)

// MySQL errors expected under row-lock contention. Both roll back the losing
// transaction and are safe to retry.
const (
	mysqlErrLockDeadlock    = 1213
	mysqlErrLockWaitTimeout = 1205
)

// wrapStoreError classifies transient driver failures as Unavailable so the
// booking path can retry them with backoff. Everything else comes back as a
// plain wrapped error.
func wrapStoreError(msg string, err error) error {
	if isTransientStoreError(err) {
		return errors.NewUnavailableError(msg, err.Error())
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isTransientStoreError(err error) bool {
	if stderrors.Is(err, driver.ErrBadConn) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if stderrors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrLockDeadlock ||
			mysqlErr.Number == mysqlErrLockWaitTimeout
	}

	// The sqlite driver reports busy/locked conditions as plain strings.
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
