package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"smart-routine/internal/model"
	"smart-routine/internal/task"
)

const displayTimeLayout = "Mon 02 Jan 15:04"

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(header)
	return tw
}

func renderTasks(w io.Writer, tasks []model.Task, loc *time.Location) {
	tw := newTable(w, table.Row{"ID", "Title", "Due", "Calendar"})
	for _, t := range tasks {
		due := ""
		if t.DueAt != nil {
			due = t.DueAt.In(loc).Format(displayTimeLayout)
		}
		cal := ""
		if t.HasCalendarEvent() {
			cal = "yes"
		}
		tw.AppendRow(table.Row{t.ID, t.Title, due, cal})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d pending", len(tasks))})
	tw.Render()
}

func renderEvents(w io.Writer, events []task.Event, loc *time.Location) {
	tw := newTable(w, table.Row{"Start", "End", "Summary", "Location"})
	for _, e := range events {
		tw.AppendRow(table.Row{
			e.Start.In(loc).Format(displayTimeLayout),
			e.End.In(loc).Format(displayTimeLayout),
			e.Summary,
			e.Location,
		})
	}
	tw.Render()
}

func renderMoods(w io.Writer, moods []model.Mood, loc *time.Location) {
	tw := newTable(w, table.Row{"When", "Label", "Confidence", "Text"})
	for _, m := range moods {
		tw.AppendRow(table.Row{
			m.CreatedAt.In(loc).Format(displayTimeLayout),
			m.Label,
			fmt.Sprintf("%.0f%%", m.Confidence*100),
			m.Text,
		})
	}
	tw.Render()
}

func renderHistory(w io.Writer, items []model.Interaction, loc *time.Location) {
	tw := newTable(w, table.Row{"When", "Source", "Intent", "Command", "Reply"})
	for _, i := range items {
		tw.AppendRow(table.Row{
			i.CreatedAt.In(loc).Format(displayTimeLayout),
			i.Source,
			i.Intent,
			i.Command,
			i.Response,
		})
	}
	tw.Render()
}
