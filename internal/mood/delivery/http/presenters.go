package http

import (
	"smart-routine/internal/model"
	"smart-routine/internal/mood"
	"smart-routine/pkg/response"
)

type analyzeReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r analyzeReq) toInput() mood.AnalyzeInput {
	return mood.AnalyzeInput{Text: r.Text}
}

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type moodResp struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	Label      string            `json:"label"`
	Confidence float64           `json:"confidence"`
	CreatedAt  response.DateTime `json:"created_at"`
}

type listResp struct {
	Moods []moodResp `json:"moods"`
}

type suggestResp struct {
	Suggestion string    `json:"suggestion"`
	Mood       *moodResp `json:"mood,omitempty"`
}

func (h *handler) newMoodResp(m model.Mood) moodResp {
	return moodResp{
		ID:         m.ID,
		Text:       m.Text,
		Label:      string(m.Label),
		Confidence: m.Confidence,
		CreatedAt:  response.DateTime(m.CreatedAt.In(h.loc)),
	}
}

func (h *handler) newListResp(o mood.ListOutput) listResp {
	moods := make([]moodResp, 0, len(o.Moods))
	for _, m := range o.Moods {
		moods = append(moods, h.newMoodResp(m))
	}
	return listResp{Moods: moods}
}

func (h *handler) newSuggestResp(o mood.SuggestOutput) suggestResp {
	resp := suggestResp{Suggestion: o.Suggestion}
	if o.Mood != nil {
		m := h.newMoodResp(*o.Mood)
		resp.Mood = &m
	}
	return resp
}
