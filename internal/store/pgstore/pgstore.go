// Package pgstore implements the store contract on PostgreSQL via sqlx.
// Inserts use RETURNING to surface server-assigned ids; partial updates
// build a SET clause from the non-nil patch fields and rely on
// UPDATE ... RETURNING to detect missing rows without a second query.
package pgstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store"
)

// Store is the PostgreSQL-backed entity store.
type Store struct {
	db *sqlx.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open sqlx handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// setBuilder accumulates SET clauses with positional placeholders.
type setBuilder struct {
	clauses []string
	args    []interface{}
}

func (b *setBuilder) add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) empty() bool { return len(b.clauses) == 0 }

func (b *setBuilder) set() string { return strings.Join(b.clauses, ", ") }

// next returns the placeholder index for the argument that follows the
// accumulated SET arguments.
func (b *setBuilder) next() int { return len(b.args) + 1 }

// uniqueViolation reports whether the error is a PostgreSQL
// unique-constraint violation.
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
