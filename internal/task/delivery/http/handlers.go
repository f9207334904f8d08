package http

import (
	"github.com/gin-gonic/gin"

	"smart-routine/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Stores a pending task. Tasks with due_at are mirrored to Google Calendar when configured.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List pending tasks
// @Description Returns pending tasks ordered by due time, unscheduled tasks last.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListPending(ctx)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// MarkDone godoc
// @Summary     Complete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/done [PATCH]
func (h *handler) MarkDone(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.MarkDone(ctx, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Deletes the task and its calendar event.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpcomingEvents godoc
// @Summary     List upcoming calendar events
// @Description Defaults to the next 7 days and 10 events.
// @Tags        Calendar
// @Produce     json
// @Param       from  query string false "RFC3339 start"
// @Param       to    query string false "RFC3339 end"
// @Param       limit query int    false "Max events (1-100)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar error"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) UpcomingEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpcomingEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.UpcomingEvents: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newEventsResp(output))
}
