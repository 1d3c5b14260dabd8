package booking

import (
	"context"
	"database/sql"

	"github.com/thetrinh16698/tufting-booking/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner abstracts transaction creation over *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
