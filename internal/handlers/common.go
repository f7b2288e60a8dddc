package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/middleware"
	"github.com/taxdesk/tax-service/internal/services"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string            `json:"error"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

// sendError logs the failure and writes a JSON error body. Server errors are
// logged at error level, client errors at debug.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)
	log := middleware.LoggerFromContext(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: correlationID})
}

// sendValidationError answers a request whose body failed binding.
func sendValidationError(c *gin.Context, err error) {
	middleware.LoggerFromContext(c.Request.Context()).Debug(constants.InvalidRequestBody,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:         constants.InvalidRequestBody,
		CorrelationID: middleware.GetCorrelationID(c),
		Details:       middleware.ValidationMessages(err),
	})
}

// handleServiceError translates service errors into HTTP responses.
// fallback is the message used for unexpected failures.
func handleServiceError(c *gin.Context, err error, fallback string) {
	var svcErr *services.Error
	switch {
	case errors.As(err, &svcErr):
		sendError(c, statusForKind(svcErr.Kind), svcErr.Message, err)
	case errors.Is(err, services.ErrImageStoreDisabled):
		sendError(c, http.StatusServiceUnavailable, services.ErrImageStoreDisabled.Error(), err)
	case taxcalc.IsConfigurationError(err):
		sendError(c, http.StatusInternalServerError, constants.ReferenceDataMissing, err)
	default:
		sendError(c, http.StatusInternalServerError, fallback, err)
	}
}

func statusForKind(kind error) int {
	switch kind {
	case services.ErrNotFound:
		return http.StatusNotFound
	case services.ErrDuplicate:
		return http.StatusConflict
	case services.ErrForbidden:
		return http.StatusForbidden
	case services.ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// currentUserID returns the caller set by middleware.RequireUserID. Routes
// without that middleware answer 401.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, constants.MissingUserID, nil)
		return 0, false
	}
	return userID, true
}

// pathID parses a positive integer path parameter, answering 400 with
// message when it is malformed.
func pathID(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		sendError(c, http.StatusBadRequest, message, err)
		return 0, false
	}
	return id, true
}

// queryYear parses the optional year query parameter.
func queryYear(c *gin.Context) (*int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < constants.MinimumTaxReturnYear {
		sendError(c, http.StatusBadRequest, constants.InvalidYear, err)
		return nil, false
	}
	return &year, true
}
