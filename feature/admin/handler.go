package admin

import (
	"travel-admin/core/httperr"
	"travel-admin/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the admin gate.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the admin routes.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	app.Post("/api/admin/login", h.HandleLogin)
	app.Post("/api/admin/change-password", protect, h.HandleChangePassword)
	app.Get("/api/admin/stats", protect, h.HandleStats)
}

// HandleLogin authenticates the admin and issues a session token.
// @Summary Admin Login
// @Description Verify admin credentials and issue a bearer session token.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body object true "Username and password"
// @Success 200 {object} map[string]string "Session token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/admin/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		l.Warn("Login rejected", zap.String("username", req.Username))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleChangePassword overwrites the admin password.
// @Summary Change Admin Password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param passwords body object true "Old and new password"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/admin/change-password [post]
func (h *Handler) HandleChangePassword(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.ChangePassword(c.Context(), req.OldPassword, req.NewPassword); err != nil {
		l.Warn("Password change rejected", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

// HandleStats returns per-entity record totals.
// @Summary Admin Stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Stats
// @Router /api/admin/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Stats(c.Context())
	if err != nil {
		l.Error("Stats aggregation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(stats)
}
