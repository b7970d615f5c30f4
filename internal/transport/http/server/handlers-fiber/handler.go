// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"chat-directory-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the directory HTTP surface using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes mounts all directory endpoints on the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/users/sync", h.PostUsersSync)
	app.Post("/users/disconnect", h.PostUsersDisconnect)
	app.Get("/users/get", h.GetUser)
	app.Get("/users/get-by-email", h.GetUserByEmail)
	app.Get("/users/search", h.GetUsersSearch)
}
