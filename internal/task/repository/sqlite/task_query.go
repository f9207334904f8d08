package sqlite

import (
	"strings"

	repo "smart-routine/internal/task/repository"
)

const taskColumns = `id, title, due_at, status, calendar_event_id, calendar_link, created_at, updated_at`

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Status != "" {
		parts = append(parts, "WHERE status = ?")
		args = append(args, string(opt.Status))
	}

	parts = append(parts, "ORDER BY due_at IS NULL, due_at, created_at, rowid")

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
