package source

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
)

const createCacheStmt = `CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dataset TEXT NOT NULL,
	author TEXT NOT NULL,
	body TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(dataset, author, body, created_at)
);`

const insertCachedDocStmt = `INSERT INTO documents (dataset, author, body, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(dataset, author, body, created_at) DO NOTHING;`

const selectCachedDocsStmt = `SELECT author, body, created_at
FROM documents
WHERE dataset = ?
ORDER BY created_at, author;`

// Cache is a local SQLite store of fetched input documents. It holds only
// the immutable raw rows; derived scores and aggregates are never persisted.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (and if needed initializes) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createCacheStmt); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db}, nil
}

// Get returns the cached rows for a dataset, empty when never fetched.
func (c *Cache) Get(dataset string) ([]Record, error) {
	rows, err := c.db.Query(selectCachedDocsStmt, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var author, body, createdAt string
		if err := rows.Scan(&author, &body, &createdAt); err != nil {
			return nil, err
		}
		ts, tsErr := time.Parse(time.RFC3339, createdAt)
		if tsErr != nil {
			return nil, tsErr
		}
		records = append(records, Record{Author: author, Text: body, Timestamp: ts})
	}

	return records, rows.Err()
}

// Put stores fetched rows in a single transaction. Replays of the same rows
// are no-ops thanks to the unique constraint.
func (c *Cache) Put(dataset string, records []Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertCachedDocStmt)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		_, execErr := stmt.Exec(dataset, rec.Author, rec.Text, rec.Timestamp.Format(time.RFC3339))
		if execErr != nil && !ErrorIsConstraintViolation(execErr) {
			tx.Rollback()
			return execErr
		}
	}
	return tx.Commit()
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// ErrorIsConstraintViolation reports whether err is a SQLite constraint
// failure, which Put treats as an already-cached row.
func ErrorIsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqlite3Err sqlite3.Error
	if errors.As(err, &sqlite3Err) {
		return sqlite3Err.Code == sqlite3.ErrConstraint
	}

	return false
}
