package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

// APIResponse is the envelope every endpoint answers with. Cached is only
// set on itinerary responses.
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Cached   *bool       `json:"cached,omitempty"`
	Fallback bool        `json:"fallback,omitempty"`
	Message  string      `json:"message,omitempty"`
	TraceID  string      `json:"traceId,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

// RespondItinerary writes a planned itinerary. Generation failures never
// change the status code; they only show up as fallback=true.
func RespondItinerary(c *gin.Context, data interface{}, cached, fallback bool, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success:  true,
		Data:     data,
		Cached:   &cached,
		Fallback: fallback,
		Message:  message,
		TraceID:  c.GetString(TraceIDKey),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRequiredFields):
		RespondError(c, http.StatusBadRequest, "Destination and duration are required")
	case errors.Is(err, ErrInvalidTripRequest):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		zap.L().Error("unhandled service error",
			zap.String("trace_id", c.GetString(TraceIDKey)),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
