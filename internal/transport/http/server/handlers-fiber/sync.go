package handlers_fiber

import (
	"net/http"

	"chat-directory-service/internal/api"
	"chat-directory-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUsersSync reconciles an identity into the directory and opens its
// platform session.
func (h *Handler) PostUsersSync(c *fiber.Ctx) error {
	var body api.SyncRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	user, err := h.uc.SyncUser(c.Context(), mapper.FromSyncRequest(body))
	if err != nil {
		h.log.Errorw("failed to sync user", "error", err.Error(), "external_id", body.ExternalID)
		return writeError(c, err)
	}

	resp := api.SyncResponse{
		User:         mapper.ToAPIUser(*user),
		SessionState: string(h.uc.SessionState()),
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostUsersDisconnect closes the active platform session. Close failures are
// swallowed upstream, so this only fails on transport errors.
func (h *Handler) PostUsersDisconnect(c *fiber.Ctx) error {
	if err := h.uc.Disconnect(c.Context()); err != nil {
		h.log.Errorw("failed to disconnect", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.SessionResponse{
		SessionState: string(h.uc.SessionState()),
	})
}
