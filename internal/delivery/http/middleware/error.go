package middleware

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
)

// ErrorMiddleware turns every error escaping a handler into the error
// envelope. Typed errors keep their status and message; anything else
// renders as a generic internal error. Development mode attaches the
// underlying cause so local debugging does not need log spelunking.
type ErrorMiddleware struct {
	log         zerolog.Logger
	development bool
}

func NewErrorMiddleware(log zerolog.Logger, development bool) *ErrorMiddleware {
	return &ErrorMiddleware{log: log, development: development}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Str("path", c.Path()).
					Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, details := m.normalize(err)
		if status >= 500 {
			m.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		}
		return response.Error(c, status, msg, details)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string, interface{}) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr != nil {
		status := appErr.Status()
		if status >= 500 {
			return status, response.MessageInternalServerError, m.devDetail(err)
		}
		return status, appErr.Message, appErr.Details
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status < 100 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, m.devDetail(err)
		}
		return status, fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, m.devDetail(err)
}

// devDetail exposes the cause in development only; production 5xx
// responses never leak internals.
func (m *ErrorMiddleware) devDetail(err error) interface{} {
	if !m.development || err == nil {
		return nil
	}
	return err.Error()
}
