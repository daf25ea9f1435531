package database

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNoEncontrado is returned when a referenced row does not exist
var ErrNoEncontrado = errors.New("registro no encontrado")

// WithTx runs fn inside a single transaction. The transaction is committed
// only if fn returns nil; any error (or panic unwinding) rolls back before
// the connection goes back to the pool.
func WithTx(db DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
