package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors to the status
// contract: 400 for validation, 401 auth, 404 missing resource, 5xx for
// storage/config, 502/503/504 for the upstream classes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCategory),
		errors.Is(err, ErrInvalidRatingRange),
		errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrMarkVisitFailed):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrReviewNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUpstreamProtocol):
		log.Printf("Upstream protocol error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrUpstreamUnavailable):
		log.Printf("Upstream unavailable: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	case errors.Is(err, ErrUpstreamConnectTimeout), errors.Is(err, ErrUpstreamReadTimeout):
		log.Printf("Upstream timeout: %v", err)
		RespondError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, ErrServiceConfig):
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Service configuration error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
