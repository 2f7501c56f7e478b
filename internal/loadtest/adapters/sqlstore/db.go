package sqlstore

import (
	"context"
	"database/sql"
)

// DB is the subset of *sqlx.DB the repository needs. Queries use "?"
// placeholders; implementations rebind them for their driver.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}
