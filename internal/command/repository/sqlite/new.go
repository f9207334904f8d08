package sqlite

import (
	"database/sql"
	"fmt"

	"smart-routine/internal/command/repository"
	"smart-routine/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed interaction Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("command/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("command/repository/sqlite.%s", method)
}
