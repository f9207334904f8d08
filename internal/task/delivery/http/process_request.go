package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("missing task id")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEventsReq binds and validates the calendar query parameters.
func (h *handler) processEventsReq(c *gin.Context) (eventsReq, error) {
	var req eventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
