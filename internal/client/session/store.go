// Package session persists the single bearer token the dashboard client
// holds between runs. The token lives in a local sqlite key/value table:
// set on login, cleared on logout, read by every outbound request.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/session/migrations"
	"github.com/rofaidaezzat/fashon-dashboard/internal/dbx"
)

const (
	tokenKey = "access_token"
	emailKey = "session_email"
)

// Store is the persistent session-token store. Exactly one session exists
// per client process.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already opened and migrated database. Used by tests.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Token returns the stored bearer token. The second return is false when no
// usable token is stored: nothing saved, an empty value, or one of the
// literal junk values ("undefined") that have been seen persisted in the wild.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	token, err := getValue(ctx, s.db, tokenKey)
	if err != nil {
		return "", false, err
	}
	if isUnset(token) {
		return "", false, nil
	}
	return token, true, nil
}

// Email returns the email the stored session was opened with.
func (s *Store) Email(ctx context.Context) (string, bool, error) {
	email, err := getValue(ctx, s.db, emailKey)
	if err != nil {
		return "", false, err
	}
	return email, email != "", nil
}

// SetSession stores the bearer token and the email it was issued to,
// replacing any previous session. Both rows land in one transaction so a
// crash never leaves a token attributed to the wrong user.
func (s *Store) SetSession(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := setValue(ctx, tx, tokenKey, token); err != nil {
			return err
		}
		return setValue(ctx, tx, emailKey, email)
	})
}

// Clear removes the stored session. Local logout must always succeed, so
// this is the only session operation logout depends on.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`, tokenKey, emailKey)
	if err != nil {
		return fmt.Errorf("failed to clear session metadata: %w", err)
	}
	return nil
}

func getValue(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return string(value), nil
}

func setValue(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func isUnset(token string) bool {
	token = strings.TrimSpace(token)
	return token == "" || strings.EqualFold(token, "undefined")
}
