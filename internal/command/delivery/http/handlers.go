package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-routine/internal/command"
	"smart-routine/pkg/response"
)

// Process godoc
// @Summary     Run a natural-language command
// @Description Classifies the text (add task, list tasks, mood) and runs it. Rate limited per client.
// @Tags        Commands
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "Caller ID"
// @Param       body      body   processReq true  "Command"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		if errors.Is(err, command.ErrEmptyInput) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "command.delivery.http.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// History godoc
// @Summary     Recent commands
// @Tags        Commands
// @Produce     json
// @Param       limit query int false "Max entries (1-100, default 20)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, req.Limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
