package handlers_fiber

import (
	"net/http"

	"chat-directory-service/internal/api"
	"chat-directory-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetUser returns the directory entry for an external identity id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.GetUser(c.Context(), c.Query("external_id"))
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUserByEmail returns the oldest directory entry with the given email.
func (h *Handler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.uc.GetUserByEmail(c.Context(), c.Query("email"))
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUsersSearch returns bounded, case-insensitive substring matches.
func (h *Handler) GetUsersSearch(c *fiber.Ctx) error {
	users, err := h.uc.SearchUsers(c.Context(), c.Query("term"))
	if err != nil {
		h.log.Errorw("failed to search users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.SearchResponse{Users: mapper.ToAPIUserList(users)})
}
