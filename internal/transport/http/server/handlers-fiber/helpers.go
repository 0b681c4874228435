package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"team-registration/internal/api"
	"team-registration/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.STORAGE
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
	case errors.Is(err, entities.ErrLoginExists):
		status = http.StatusConflict
		code = api.LOGINEXISTS
		msg = "login already exists"
	case errors.Is(err, entities.ErrApplicationNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "application not found"
	case errors.Is(err, entities.ErrDocumentNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "document not found"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func applicationID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid application id")
	}
	return id, nil
}
