package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/dbx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// OpenSQL opens a SQL-backed slot store. The driver is chosen by DSN:
// "postgres://..." uses pgx, anything else is treated as a SQLite file path.
// Pending migrations are applied before the backend is returned.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, Backend, error) {
	driver, dialect := "sqlite", "sqlite3"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, dialect = "pgx", "postgres"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrations failed: %w", err)
	}

	if dialect == "postgres" {
		return db, NewPostgresBackend(db), nil
	}
	return db, NewSQLiteBackend(db), nil
}

// SQLiteBackend stores slots in a SQLite table. It accepts a DBTX so tests
// can run it against a transaction.
type SQLiteBackend struct {
	db dbx.DBTX
}

func NewSQLiteBackend(db dbx.DBTX) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

func (r *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	query := `select payload from slots where name = ?`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return payload, nil
}

func (r *SQLiteBackend) Put(ctx context.Context, key string, payload []byte) error {
	query := `insert into slots (name, payload) values (?, ?)
			on conflict(name) do update set payload = excluded.payload`
	if _, err := r.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	return nil
}

func (r *SQLiteBackend) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `delete from slots where name = ?`, key); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

// PostgresBackend is the Postgres flavor of the slots table.
type PostgresBackend struct {
	db dbx.DBTX
}

func NewPostgresBackend(db dbx.DBTX) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (r *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT payload FROM slots WHERE name = $1`
	var payload []byte
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return payload, nil
}

func (r *PostgresBackend) Put(ctx context.Context, key string, payload []byte) error {
	query := `INSERT INTO slots (name, payload) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload`
	if _, err := r.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	return nil
}

func (r *PostgresBackend) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE name = $1`, key); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}
