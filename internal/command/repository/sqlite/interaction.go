package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "smart-routine/internal/command/repository"
	"smart-routine/internal/model"
	pkgSqlite "smart-routine/pkg/sqlite"
)

func (r *implRepository) CreateInteraction(ctx context.Context, opt repo.CreateInteractionOptions) (model.Interaction, error) {
	const query = `
		INSERT INTO interactions (id, source, command, intent, response, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	i := model.Interaction{
		ID:        uuid.NewString(),
		Source:    opt.Source,
		Command:   opt.Command,
		Intent:    opt.Intent,
		Response:  opt.Response,
		CreatedAt: time.Now(),
	}

	_, err := r.db.ExecContext(ctx, query, i.ID, i.Source, i.Command, i.Intent, i.Response, pkgSqlite.FormatTime(i.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInteraction"), err)
		return model.Interaction{}, repo.ErrFailedToInsert
	}
	return i, nil
}

func (r *implRepository) ListInteractions(ctx context.Context, opt repo.ListInteractionsOptions) ([]model.Interaction, error) {
	query := `
		SELECT id, source, command, intent, response, created_at
		FROM interactions
		ORDER BY created_at DESC, rowid DESC`
	var args []any
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListInteractions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Interaction
	for rows.Next() {
		var (
			i         model.Interaction
			createdAt string
		)
		if err := rows.Scan(&i.ID, &i.Source, &i.Command, &i.Intent, &i.Response, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListInteractions"), err)
			return nil, repo.ErrFailedToList
		}
		if i.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListInteractions"), fmt.Errorf("parse created_at: %w", err))
			return nil, repo.ErrFailedToList
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListInteractions"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
