package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TxRunner wraps a unit of work in a database transaction. Capacity checks and
// the insert they guard must share one serializable transaction so that two
// concurrent bookings for the same interval cannot both pass the check.
type TxRunner interface {
	WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type txRunner struct {
	db *Connection
}

func NewTxRunner(db *Connection) TxRunner {
	return &txRunner{db: db}
}

func (r *txRunner) WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
