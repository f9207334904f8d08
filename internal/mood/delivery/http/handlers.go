package http

import (
	"github.com/gin-gonic/gin"

	"smart-routine/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a mood statement
// @Description Classifies the statement as positive, negative or neutral and stores it.
// @Tags        Moods
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Mood statement"
// @Success     200  {object} moodResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Analyzer unavailable"
// @Router      /api/v1/moods [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "mood.delivery.http.Analyze: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newMoodResp(output.Mood))
}

// List godoc
// @Summary     List recent moods
// @Tags        Moods
// @Produce     json
// @Param       limit query int false "Max moods (1-100, default 20)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/moods [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListRecent(ctx, req.Limit)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Suggest godoc
// @Summary     Suggest a routine
// @Description Suggestion based on the latest mood and the current local hour.
// @Tags        Moods
// @Produce     json
// @Success     200 {object} suggestResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/moods/suggestion [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Suggest(ctx, h.now().In(h.loc))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
