package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/motorcare_service/internal/core/domain"
)

const serverErrorMessage = "Terjadi kesalahan server"

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Motor tidak ditemukan"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Motor berhasil ditambahkan"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{
		Success: false,
		Message: message,
	})
}

func newSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, successResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError writes the client-facing message of a domain error, or a
// generic server error for anything else.
func handleServiceError(c *gin.Context, err error) {
	status := errorStatus(err)
	message := domain.PublicMessage(err)
	if status == http.StatusInternalServerError || message == "" {
		message = serverErrorMessage
	}
	newErrorResponse(c, status, message)
}

// parseOptionalUUID returns nil for an empty value.
func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
