package http

import (
	"github.com/gin-gonic/gin"

	"smart-routine/internal/model"
)

// UserIDHeader optionally identifies the caller of the HTTP API.
const UserIDHeader = "X-User-ID"

func (h *handler) processProcessReq(c *gin.Context) (processReq, model.Scope, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		userID = c.ClientIP()
	}
	return req, model.Scope{UserID: userID, Source: model.SourceHTTP}, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
