package handlers_fiber

import (
	"net/http"

	"team-registration/internal/api"
	"team-registration/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostApplications submits a new team application and returns it with
// freshly minted credentials.
func (h *Handler) PostApplications(c *fiber.Ctx) error {
	var body api.SubmitApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	app, err := h.uc.SubmitApplication(c.Context(), mapper.FromAPISubmitRequest(body))
	if err != nil {
		h.log.Errorw("failed to submit application", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Application api.Application `json:"application"`
	}{Application: mapper.ToAPIApplication(*app)})
}

// GetApplications returns all applications in ascending id order.
func (h *Handler) GetApplications(c *fiber.Ctx) error {
	apps, err := h.uc.Applications(c.Context())
	if err != nil {
		h.log.Errorw("failed to list applications", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Applications []api.Application `json:"applications"`
	}{Applications: mapper.ToAPIApplicationList(apps)})
}

// GetApplicationPreview returns one application composed with its full roster.
func (h *Handler) GetApplicationPreview(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, err.Error()))
	}

	preview, err := h.uc.Preview(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIPreview(*preview))
}
