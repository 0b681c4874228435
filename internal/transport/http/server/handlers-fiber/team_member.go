package handlers_fiber

import (
	"net/http"

	"team-registration/internal/api"
	"team-registration/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostApplicationMembers adds one roster entry to an existing application.
func (h *Handler) PostApplicationMembers(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, err.Error()))
	}

	var body api.AddTeamMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	member, err := h.uc.AddTeamMember(c.Context(), mapper.FromAPIMemberRequest(id, body))
	if err != nil {
		h.log.Errorw("failed to add team member", "application_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Member api.TeamMember `json:"member"`
	}{Member: mapper.ToAPITeamMember(*member)})
}

// GetApplicationMembers returns the roster of one application.
func (h *Handler) GetApplicationMembers(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, err.Error()))
	}

	members, err := h.uc.TeamMembers(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Members []api.TeamMember `json:"members"`
	}{Members: mapper.ToAPITeamMemberList(members)})
}
