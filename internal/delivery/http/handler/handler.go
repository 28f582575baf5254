// Package handler wires HTTP requests to the usecases. Handlers bind
// and validate input, delegate, and shape the response; every failure
// is returned as a typed error for the error middleware to render.
package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/middleware"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

func actorFromCtx(c fiber.Ctx) (usecase.Actor, error) {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		return usecase.Actor{}, apperr.Unauthorized("authentication required")
	}
	return actor, nil
}

func uuidParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.InvalidInput("invalid " + name)
	}
	return id, nil
}

func bindBody(c fiber.Ctx, v *validator.Validate, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return apperr.Wrap(err, apperr.KindInvalidInput, "malformed request body")
	}
	if err := v.Struct(req); err != nil {
		return apperr.InvalidInput("validation failed").WithDetails(validationDetails(err))
	}
	return nil
}

// validationDetails flattens validator errors into a field-to-rule map
// for the error envelope.
func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// queryInt parses an optional integer query param. A missing param
// yields the default; a malformed one is a client error.
func queryInt(c fiber.Ctx, key string, def int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.InvalidInput("invalid " + key)
	}
	return v, nil
}

func queryFloat(c fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, apperr.InvalidInput("invalid " + key)
	}
	return &v, nil
}

func queryBool(c fiber.Ctx, key string) (*bool, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, apperr.InvalidInput("invalid " + key)
	}
	return &v, nil
}

func queryUUID(c fiber.Ctx, key string) (*uuid.UUID, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := uuid.Parse(s)
	if err != nil {
		return nil, apperr.InvalidInput("invalid " + key)
	}
	return &v, nil
}
