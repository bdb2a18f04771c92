package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type Meta struct {
	Count     int    `json:"count,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data"`
	Meta      *Meta        `json:"meta,omitempty"` // omitempty so it disappears when nil
	Error     *ErrorDetail `json:"error"`
	Message   string       `json:"message"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// Success writes the standard success envelope.
func Success(c *gin.Context, status int, data interface{}, meta *Meta) {
	requestId := c.GetString("X-Request-ID")
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		Meta:      meta,
		RequestID: requestId,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Error writes the failure envelope.
func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	requestId := c.GetString("X-Request-ID")
	c.JSON(status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		Message:   message,
		RequestID: requestId,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
