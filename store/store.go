package store

import (
	"context"
	"database/sql"
)

// Store owns all persistent collections: the role registry, stakeholder
// records, projects, forms and their seeded responses. Every
// multi-statement mutation runs in one transaction, and child rows
// (role fields, form questions) are replaced wholesale on update, so
// readers never observe a partially applied change.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
