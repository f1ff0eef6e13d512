package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/storesearch/internal/jsonutil"
	"github.com/llehouerou/storesearch/internal/logger"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data any) Response {
	return Response{Code: 0, Message: "success", Data: data}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(code int, message string) Response {
	return Response{Code: code, Message: message}
}

// writeJSON encodes v with the shared sonic configuration.
func writeJSON(c *gin.Context, status int, v any) {
	data, err := jsonutil.Marshal(v)
	if err != nil {
		logger.Get().Error("encode response: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func writeError(c *gin.Context, status int, message string) {
	writeJSON(c, status, NewErrorResponse(status, message))
}
