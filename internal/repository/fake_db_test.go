package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type call struct {
	query string
	args  []any
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d targets, %d values", len(dest), len(r.vals))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			v, ok := r.vals[i].(uuid.UUID)
			if !ok {
				return fmt.Errorf("scan type mismatch uuid at %d", i)
			}
			*d = v
		case *uuid.NullUUID:
			v, ok := r.vals[i].(uuid.NullUUID)
			if !ok {
				return fmt.Errorf("scan type mismatch nulluuid at %d", i)
			}
			*d = v
		case *string:
			v, ok := r.vals[i].(string)
			if !ok {
				return fmt.Errorf("scan type mismatch string at %d", i)
			}
			*d = v
		case *bool:
			v, ok := r.vals[i].(bool)
			if !ok {
				return fmt.Errorf("scan type mismatch bool at %d", i)
			}
			*d = v
		case *int:
			v, ok := r.vals[i].(int)
			if !ok {
				return fmt.Errorf("scan type mismatch int at %d", i)
			}
			*d = v
		case *int16:
			v, ok := r.vals[i].(int16)
			if !ok {
				return fmt.Errorf("scan type mismatch int16 at %d", i)
			}
			*d = v
		case *int64:
			v, ok := r.vals[i].(int64)
			if !ok {
				return fmt.Errorf("scan type mismatch int64 at %d", i)
			}
			*d = v
		case *time.Time:
			v, ok := r.vals[i].(time.Time)
			if !ok {
				return fmt.Errorf("scan type mismatch time at %d", i)
			}
			*d = v
		case *sql.NullFloat64:
			v, ok := r.vals[i].(sql.NullFloat64)
			if !ok {
				return fmt.Errorf("scan type mismatch nullfloat at %d", i)
			}
			*d = v
		case *sql.NullTime:
			v, ok := r.vals[i].(sql.NullTime)
			if !ok {
				return fmt.Errorf("scan type mismatch nulltime at %d", i)
			}
			*d = v
		case *sql.NullString:
			v, ok := r.vals[i].(sql.NullString)
			if !ok {
				return fmt.Errorf("scan type mismatch nullstring at %d", i)
			}
			*d = v
		case *job.Status:
			v, ok := r.vals[i].(job.Status)
			if !ok {
				return fmt.Errorf("scan type mismatch job status at %d", i)
			}
			*d = v
		case *job.Type:
			v, ok := r.vals[i].(job.Type)
			if !ok {
				return fmt.Errorf("scan type mismatch job type at %d", i)
			}
			*d = v
		case *job.ExperienceLevel:
			v, ok := r.vals[i].(job.ExperienceLevel)
			if !ok {
				return fmt.Errorf("scan type mismatch experience level at %d", i)
			}
			*d = v
		case *application.Status:
			v, ok := r.vals[i].(application.Status)
			if !ok {
				return fmt.Errorf("scan type mismatch application status at %d", i)
			}
			*d = v
		case *user.Role:
			v, ok := r.vals[i].(user.Role)
			if !ok {
				return fmt.Errorf("scan type mismatch role at %d", i)
			}
			*d = v
		case *company.Size:
			v, ok := r.vals[i].(company.Size)
			if !ok {
				return fmt.Errorf("scan type mismatch company size at %d", i)
			}
			*d = v
		default:
			return fmt.Errorf("unsupported scan target %T at %d", dest[i], i)
		}
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{vals: r.rows[r.idx-1]}.Scan(dest...)
}

func (r *fakeRows) Err() error { return r.err }

type execResult struct {
	n   int64
	err error
}

// fakeDB records every statement and replays queued results, so tests
// can assert both the SQL a repository emits and how it maps store
// outcomes.
type fakeDB struct {
	calls []call

	execResults []execResult
	rowResults  []fakeRow
	rowsResults []*fakeRows

	beginErr error
	lastTx   *fakeTx
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.calls = append(db.calls, call{query: query, args: args})
	if len(db.execResults) == 0 {
		return 1, nil
	}
	r := db.execResults[0]
	db.execResults = db.execResults[1:]
	return r.n, r.err
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	db.calls = append(db.calls, call{query: query, args: args})
	if len(db.rowsResults) == 0 {
		return &fakeRows{}, nil
	}
	r := db.rowsResults[0]
	db.rowsResults = db.rowsResults[1:]
	return r, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	db.calls = append(db.calls, call{query: query, args: args})
	if len(db.rowResults) == 0 {
		return fakeRow{err: pgx.ErrNoRows}
	}
	r := db.rowResults[0]
	db.rowResults = db.rowResults[1:]
	return r
}

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	tx := &fakeTx{db: db}
	db.lastTx = tx
	return tx, nil
}

type fakeTx struct {
	db         *fakeDB
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}
