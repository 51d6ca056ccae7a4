package retryutil

import (
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
)

var options = []retry.Option{
	retry.Attempts(3),
	retry.LastErrorOnly(true),
	retry.RetryIf(func(err error) bool {
		return retry.IsRecoverable(err) && !errors.Is(err, pgx.ErrNoRows)
	}),
}

func RetryWithData[T any](f func() (T, error)) (T, error) {
	return retry.DoWithData(f, options...)
}

func RetryWithoutData(f func() error) error {
	return retry.Do(f, options...)
}
