package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sessionkit/pkg/pg"
)

// DefaultTable is the table PGStore uses unless WithTable is given.
const DefaultTable = "sessions"

// DB is the subset of *pgxpool.Pool used by PGStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PGStore implements Store on a PostgreSQL table created by the
// internal/db/migrations scripts.
type PGStore struct {
	db    DB
	table string
	clean CleanStatementFunc

	selectSQL     string
	upsertSQL     string
	deleteSQL     string
	deleteExpSQL  string
	setUserSQL    string
	deleteUserSQL string
	unsetUserSQL  string
}

// PGStoreOption configures a PGStore.
type PGStoreOption func(*PGStore)

// WithTable sets the sessions table name. A schema-qualified name such as
// "auth.sessions" is quoted per part.
func WithTable(name string) PGStoreOption {
	return func(s *PGStore) {
		if name != "" {
			s.table = name
		}
	}
}

// WithCleanHook installs a hook that may rewrite delete statements.
func WithCleanHook(fn CleanStatementFunc) PGStoreOption {
	return func(s *PGStore) {
		s.clean = fn
	}
}

// NewPGStore creates a PostgreSQL-backed store.
func NewPGStore(db DB, opts ...PGStoreOption) *PGStore {
	s := &PGStore{
		db:    db,
		table: DefaultTable,
	}
	for _, opt := range opts {
		opt(s)
	}

	t := pgx.Identifier(strings.Split(s.table, ".")).Sanitize()
	s.selectSQL = fmt.Sprintf(`SELECT token, subnet, expires, user_agent, user_id, data FROM %s WHERE token = $1`, t)
	s.upsertSQL = fmt.Sprintf(`INSERT INTO %s (token, subnet, expires, user_agent, data) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (token) DO UPDATE SET subnet = EXCLUDED.subnet, expires = EXCLUDED.expires, user_agent = EXCLUDED.user_agent, data = EXCLUDED.data`, t)
	s.deleteSQL = fmt.Sprintf(`DELETE FROM %s WHERE token = $1`, t)
	s.deleteExpSQL = fmt.Sprintf(`DELETE FROM %s WHERE expires < $1`, t)
	s.setUserSQL = fmt.Sprintf(`UPDATE %s SET user_id = $1 WHERE token = $2`, t)
	s.deleteUserSQL = fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND token <> $2`, t)
	s.unsetUserSQL = fmt.Sprintf(`UPDATE %s SET user_id = NULL WHERE token = $1`, t)

	return s
}

// Get retrieves a record by token
func (s *PGStore) Get(ctx context.Context, token string) (*Record, error) {
	var rec Record
	err := s.db.QueryRow(ctx, s.selectSQL, token).Scan(
		&rec.Token, &rec.Subnet, &rec.Expires, &rec.UserAgent, &rec.UserID, &rec.Data,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, storageError(err)
	}
	return &rec, nil
}

// Upsert inserts or refreshes a record
func (s *PGStore) Upsert(ctx context.Context, record *Record) error {
	if record == nil || record.Token == "" {
		return ErrInvalidSession
	}

	data := record.Data
	if data == nil {
		// data is NOT NULL; an empty payload is stored as an empty blob.
		data = []byte{}
	}

	_, err := s.db.Exec(ctx, s.upsertSQL,
		record.Token, record.Subnet, record.Expires, record.UserAgent, data,
	)
	if err != nil {
		return storageError(err)
	}
	return nil
}

// Delete removes a record by token
func (s *PGStore) Delete(ctx context.Context, token string, reason CleanReason) error {
	_, err := s.execClean(ctx, s.deleteSQL, reason, token)
	return err
}

// DeleteExpired removes every record with expires < now
func (s *PGStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.execClean(ctx, s.deleteExpSQL, CleanGC, now.Unix())
}

// SetUserID binds a user to the record with the given token
func (s *PGStore) SetUserID(ctx context.Context, token string, userID int64) error {
	if _, err := s.db.Exec(ctx, s.setUserSQL, userID, token); err != nil {
		return storageError(err)
	}
	return nil
}

// ClearUserID deletes the other sessions of userID and unbinds exceptToken.
// Both statements run in one transaction.
func (s *PGStore) ClearUserID(ctx context.Context, userID int64, exceptToken string) error {
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, s.deleteUserSQL, userID, exceptToken); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, s.unsetUserSQL, exceptToken)
		return err
	})
	if err != nil {
		return storageError(err)
	}
	return nil
}

// execClean runs a delete statement after passing it through the clean hook.
// An empty hook result keeps the original statement.
func (s *PGStore) execClean(ctx context.Context, stmt string, reason CleanReason, args ...any) (int64, error) {
	if s.clean != nil {
		if rewritten := s.clean(stmt, reason, args); rewritten != "" {
			stmt = rewritten
		}
	}

	tag, err := s.db.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, storageError(err)
	}
	return tag.RowsAffected(), nil
}

// storageError joins err with ErrStorage, and with ErrSchemaMissing when the
// table does not exist.
func storageError(err error) error {
	if pg.IsUndefinedTableError(err) {
		return errors.Join(ErrStorage, ErrSchemaMissing, err)
	}
	return errors.Join(ErrStorage, err)
}
