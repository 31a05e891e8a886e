// Package source loads the input datasets: remote Postgres tables, CSV over
// HTTP, and a local SQLite cache so repeated runs skip the network.
package source

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX interface that joins pgx.Conn and pgx.Tx for easier handling of
// transactions. A caller can just pass in either a pgx.Conn or pgx.Tx where
// a DBTX is expected.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

const selectDocumentsStmt = `SELECT author, body, created_at
FROM documents
WHERE dataset = $1
ORDER BY created_at, author;`

// PostgresSource reads datasets from a remote Postgres instance. Documents
// are consumed read-only; nothing is ever written back.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

// NewPostgresSource opens a connection pool against the given DSN.
func NewPostgresSource(ctx context.Context, dsn string) (PostgresSource, error) {
	pool, openErr := pgxpool.New(ctx, dsn)
	if openErr != nil {
		return PostgresSource{}, openErr
	}
	return PostgresSource{pool}, nil
}

// LoadDataset fetches every document row for a named dataset.
func (s PostgresSource) LoadDataset(ctx context.Context, dataset string) ([]Record, error) {
	return loadDocuments(ctx, s.Pool, dataset)
}

// Close releases the connection pool.
func (s PostgresSource) Close() {
	s.Pool.Close()
}

func loadDocuments(ctx context.Context, db DBTX, dataset string) ([]Record, error) {
	rows, err := db.Query(ctx, selectDocumentsStmt, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var author, body string
		var createdAt time.Time
		if err := rows.Scan(&author, &body, &createdAt); err != nil {
			return nil, err
		}
		records = append(records, Record{
			Author:    author,
			Text:      body,
			Timestamp: createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
