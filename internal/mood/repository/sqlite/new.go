package sqlite

import (
	"database/sql"
	"fmt"

	"smart-routine/internal/mood/repository"
	"smart-routine/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed mood Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("mood/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("mood/repository/sqlite.%s", method)
}
