// Package storage is the driver-agnostic query adapter. Repositories hand it
// SQL templates written with `?` placeholders; the dialector selected at
// startup (postgres or sqlite) translates them to the engine's native
// syntax. Callers never see engine-specific errors — everything is wrapped
// as *apierror.StorageError except the ErrNoRows sentinel.
package storage

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
)

// ErrNoRows is returned by FetchOne when the query matches nothing.
var ErrNoRows = errors.New("storage: no rows")

// DB wraps a gorm connection behind the four-operation adapter contract.
type DB struct {
	gdb    *gorm.DB
	driver string
}

func New(gdb *gorm.DB, driver string) *DB {
	return &DB{gdb: gdb, driver: driver}
}

// Gorm exposes the underlying connection for model-based CRUD and
// transactions; raw listing/lookup SQL should go through the adapter methods.
func (d *DB) Gorm() *gorm.DB { return d.gdb }

// Driver reports the active backend ("postgres" or "sqlite").
func (d *DB) Driver() string { return d.driver }

// FetchOne scans the first matching row into dest, or returns ErrNoRows.
func (d *DB) FetchOne(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	tx := d.gdb.WithContext(ctx).Raw(query, args...).Scan(dest)
	if tx.Error != nil {
		return apierror.Storage("fetch one", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNoRows
	}
	return nil
}

// FetchAll scans every matching row into dest (a pointer to a slice).
func (d *DB) FetchAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := d.gdb.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return apierror.Storage("fetch all", err)
	}
	return nil
}

// Execute runs a statement and reports the number of affected rows.
func (d *DB) Execute(ctx context.Context, query string, args ...interface{}) (int64, error) {
	tx := d.gdb.WithContext(ctx).Exec(query, args...)
	if tx.Error != nil {
		return 0, apierror.Storage("execute", tx.Error)
	}
	return tx.RowsAffected, nil
}

var returningRe = regexp.MustCompile(`(?i)\breturning\b`)

// InsertReturningID runs an INSERT and yields the generated identifier.
// A RETURNING clause is appended when the statement lacks one; both backends
// support it (SQLite since 3.35).
func (d *DB) InsertReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := strings.TrimRight(strings.TrimSpace(query), ";")
	if !returningRe.MatchString(q) {
		q += " RETURNING id"
	}
	var id int64
	tx := d.gdb.WithContext(ctx).Raw(q, args...).Scan(&id)
	if tx.Error != nil {
		return 0, apierror.Storage("insert", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return 0, apierror.Storage("insert", errors.New("statement yielded no generated id"))
	}
	return id, nil
}

// Transaction runs fn atomically; any returned error rolls everything back.
func (d *DB) Transaction(ctx context.Context, fn func(tx *DB) error) error {
	return d.gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx, d.driver))
	})
}

// IsUniqueViolation reports whether err stems from a unique-constraint
// violation on either backend. The text fallback mirrors the checks the
// drivers themselves don't normalize (SQLite "UNIQUE constraint failed",
// Postgres "duplicate key" / SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "23505")
}
