package handlers_fiber

import (
	"errors"
	"net/http"

	"chat-directory-service/internal/api"
	"chat-directory-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrMissingIdentity):
		status = http.StatusBadRequest
		code = api.CodeMissingIdentity
		msg = "an authenticated identity is required"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "user not found"
	case errors.Is(err, entities.ErrSyncFailed):
		status = http.StatusBadGateway
		code = api.CodeSyncFailed
		msg = "failed to sync user data, please retry"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
