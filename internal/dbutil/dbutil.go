package dbutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mdayat/prayer-tracker/internal/retryutil"
	"github.com/mdayat/prayer-tracker/repository"
)

// TxBeginner is satisfied by *pgxpool.Pool and *pgx.Conn.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// RetryableTxWithData runs f in its own transaction and retries the whole
// transaction. f stops the retries by returning a retry.Unrecoverable error.
func RetryableTxWithData[T any](
	ctx context.Context,
	conn TxBeginner,
	queries *repository.Queries,
	f func(qtx *repository.Queries) (T, error),
) (T, error) {
	return retryutil.RetryWithData(func() (T, error) {
		var result T
		err := pgx.BeginTxFunc(ctx, conn, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
			var err error
			result, err = f(queries.WithTx(tx))
			return err
		})

		return result, err
	})
}
