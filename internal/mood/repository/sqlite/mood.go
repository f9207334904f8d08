package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-routine/internal/model"
	repo "smart-routine/internal/mood/repository"
	pkgSqlite "smart-routine/pkg/sqlite"
)

const moodColumns = `id, text, label, confidence, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) CreateMood(ctx context.Context, opt repo.CreateMoodOptions) (model.Mood, error) {
	const query = `INSERT INTO moods (id, text, label, confidence, created_at) VALUES (?, ?, ?, ?, ?)`

	m := model.Mood{
		ID:         uuid.NewString(),
		Text:       opt.Text,
		Label:      opt.Label,
		Confidence: opt.Confidence,
		CreatedAt:  time.Now(),
	}

	_, err := r.db.ExecContext(ctx, query, m.ID, m.Text, string(m.Label), m.Confidence, pkgSqlite.FormatTime(m.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMood"), err)
		return model.Mood{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListMoods(ctx context.Context, opt repo.ListMoodsOptions) ([]model.Mood, error) {
	query := fmt.Sprintf(`SELECT %s FROM moods ORDER BY created_at DESC, rowid DESC`, moodColumns)
	var args []any
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMoods"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var moods []model.Mood
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMoods"), err)
			return nil, repo.ErrFailedToList
		}
		moods = append(moods, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMoods"), err)
		return nil, repo.ErrFailedToList
	}
	return moods, nil
}

func (r *implRepository) GetLatestMood(ctx context.Context) (model.Mood, error) {
	query := fmt.Sprintf(`SELECT %s FROM moods ORDER BY created_at DESC, rowid DESC LIMIT 1`, moodColumns)

	m, err := scanMood(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Mood{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLatestMood"), err)
		return model.Mood{}, repo.ErrFailedToGet
	}
	return m, nil
}

func scanMood(s scanner) (model.Mood, error) {
	var (
		m         model.Mood
		label     string
		createdAt string
	)
	if err := s.Scan(&m.ID, &m.Text, &label, &m.Confidence, &createdAt); err != nil {
		return model.Mood{}, err
	}
	m.Label = model.MoodLabel(label)

	var err error
	if m.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		return model.Mood{}, fmt.Errorf("parse created_at: %w", err)
	}
	return m, nil
}
