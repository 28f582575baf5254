package response

import (
	"time"

	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"

	"github.com/gofiber/fiber/v3"
)

type Envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       interface{}            `json:"data"`
	Pagination *pagination.Pagination `json:"pagination,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	MessageOK                  = "ok"
	MessageCreated             = "created"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{
		Success:   true,
		Message:   normalizeMessage(message, st),
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// Paged attaches the pagination block for list endpoints.
func Paged(c fiber.Ctx, status int, message string, data interface{}, pg pagination.Pagination) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{
		Success:    true,
		Message:    normalizeMessage(message, st),
		Data:       data,
		Pagination: &pg,
		Timestamp:  time.Now().UTC(),
	})
}

func Error(c fiber.Ctx, status int, message string, details interface{}) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(ErrorEnvelope{
		Success:   false,
		Error:     ErrorBody{Message: normalizeMessage(message, st), Details: details},
		Timestamp: time.Now().UTC(),
	})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return defaultMessageForStatus(status)
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusCreated:
		return MessageCreated
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
