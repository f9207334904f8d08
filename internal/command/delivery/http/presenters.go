package http

import (
	"time"

	"smart-routine/internal/command"
	"smart-routine/internal/model"
	"smart-routine/pkg/response"
)

type processReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r processReq) toInput() command.ProcessInput {
	return command.ProcessInput{Text: r.Text}
}

type historyReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type taskResp struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	DueAt        *response.DateTime `json:"due_at,omitempty"`
	Status       string             `json:"status"`
	CalendarLink string             `json:"calendar_link,omitempty"`
}

type moodResp struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type processResp struct {
	Intent string     `json:"intent"`
	Reply  string     `json:"reply"`
	Task   *taskResp  `json:"task,omitempty"`
	Tasks  []taskResp `json:"tasks,omitempty"`
	Mood   *moodResp  `json:"mood,omitempty"`
}

type interactionResp struct {
	ID        string            `json:"id"`
	Source    string            `json:"source"`
	Command   string            `json:"command"`
	Intent    string            `json:"intent"`
	Response  string            `json:"response"`
	CreatedAt response.DateTime `json:"created_at"`
}

type historyResp struct {
	Interactions []interactionResp `json:"interactions"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	var due *time.Time
	if t.DueAt != nil {
		local := t.DueAt.In(h.loc)
		due = &local
	}
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		DueAt:        response.NewDateTime(due),
		Status:       string(t.Status),
		CalendarLink: t.CalendarLink,
	}
}

func (h *handler) newProcessResp(o command.ProcessOutput) processResp {
	resp := processResp{Intent: string(o.Intent), Reply: o.Reply}
	if o.Task != nil {
		t := h.newTaskResp(*o.Task)
		resp.Task = &t
	}
	for _, t := range o.Tasks {
		resp.Tasks = append(resp.Tasks, h.newTaskResp(t))
	}
	if o.Mood != nil {
		resp.Mood = &moodResp{Label: string(o.Mood.Label), Confidence: o.Mood.Confidence}
	}
	return resp
}

func (h *handler) newHistoryResp(o command.HistoryOutput) historyResp {
	items := make([]interactionResp, 0, len(o.Interactions))
	for _, i := range o.Interactions {
		items = append(items, interactionResp{
			ID:        i.ID,
			Source:    i.Source,
			Command:   i.Command,
			Intent:    i.Intent,
			Response:  i.Response,
			CreatedAt: response.DateTime(i.CreatedAt.In(h.loc)),
		})
	}
	return historyResp{Interactions: items}
}
