package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weathernow.app/internal/core/weather"
	"weathernow.app/internal/ports"
	errorspkg "weathernow.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError writes the failure text shown to users with a status matching the error type
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := errorResponse(err)

	if statusCode >= http.StatusInternalServerError {
		s.logger.Error("Request failed",
			ports.F("path", c.Request.URL.Path),
			ports.F("status", statusCode),
			ports.F("error", err))
	} else {
		s.logger.Debug("Request rejected",
			ports.F("path", c.Request.URL.Path),
			ports.F("status", statusCode),
			ports.F("error", err))
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func errorResponse(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Error: Internal server error"
	}

	message := weather.FailureMessage(appErr)
	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, message
	case errorspkg.ConflictError:
		return http.StatusConflict, message
	case errorspkg.HTTPError, errorspkg.TransportError, errorspkg.ExternalAPIError:
		return http.StatusBadGateway, message
	default:
		return http.StatusInternalServerError, "Error: Internal server error"
	}
}
