// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"team-registration/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the registration API using service layer interfaces.
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

// RegisterRoutes binds all API routes to the fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Post("/applications", h.PostApplications)
	app.Get("/applications", h.GetApplications)
	app.Post("/applications/:id/members", h.PostApplicationMembers)
	app.Get("/applications/:id/members", h.GetApplicationMembers)
	app.Get("/applications/:id/preview", h.GetApplicationPreview)
	app.Post("/applications/:id/documents", h.PostApplicationDocuments)
	app.Get("/documents/:name", h.GetDocument)
}
