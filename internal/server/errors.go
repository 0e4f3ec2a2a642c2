package server

import (
	"errors"
	"net/http"

	authdomain "github.com/acmeboard/acmeboard/internal/auth/domain"
	customerdomain "github.com/acmeboard/acmeboard/internal/customer/domain"
	dashboarddomain "github.com/acmeboard/acmeboard/internal/dashboard/domain"
	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	revenuedomain "github.com/acmeboard/acmeboard/internal/revenue/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrUnauthorized = errors.New("unauthorized")

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked),
		errors.Is(err, authdomain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, invoicedomain.ErrInvalidID),
		errors.Is(err, customerdomain.ErrInvalidID):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid id",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isFetchOrMutationFailure(err):
		// Sanitized domain failures keep their message; the cause was
		// already logged where it happened.
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isFetchOrMutationFailure(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrFetchFailed),
		errors.Is(err, invoicedomain.ErrCreateFailed),
		errors.Is(err, invoicedomain.ErrUpdateFailed),
		errors.Is(err, invoicedomain.ErrDeleteFailed),
		errors.Is(err, customerdomain.ErrFetchFailed),
		errors.Is(err, dashboarddomain.ErrFetchFailed),
		errors.Is(err, revenuedomain.ErrFetchFailed):
		return true
	default:
		return false
	}
}
