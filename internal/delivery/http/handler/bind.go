package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/payload"
	"career-guide/internal/pkg/response"
	"career-guide/internal/pkg/validation"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// bindJSON decodes the request body into req and runs struct validation.
func bindJSON(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	fields, err := validation.Struct(req)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	if len(fields) > 0 {
		return middleware.NewValidationError(fields, nil)
	}
	return nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// mapUsecaseError is shared by every handler; the usecases expose the same
// sentinel set.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidPayload):
		var ve *payload.ValidationError
		if errors.As(err, &ve) {
			return middleware.NewValidationError(ve.Errors, err)
		}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Malformed payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
