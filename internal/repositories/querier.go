package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// querier покрывает и *pgxpool.Pool, и pgx.Tx: общий путь чтения оборудования
// выполняется как на пуле, так и внутри транзакции TxManager.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
