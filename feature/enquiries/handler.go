package enquiries

import (
	"travel-admin/core/httperr"
	"travel-admin/core/logger"
	"travel-admin/feature/enquiries/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for enquiries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the enquiry routes. Creation is public; reads
// require an admin session.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	app.Post("/api/query", h.HandleCreate)
	app.Get("/api/query", protect, h.HandleList)
	app.Get("/api/query/monthly", protect, h.HandleMonthly)
}

// HandleCreate stores a customer enquiry.
// @Summary Create Enquiry
// @Description Store a customer contact request.
// @Tags enquiries
// @Accept json
// @Produce json
// @Param enquiry body models.Enquiry true "Enquiry"
// @Success 201 {object} models.Enquiry
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/query [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var e models.Enquiry
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	e.ID = 0

	if err := h.service.Create(c.Context(), &e); err != nil {
		l.Error("Enquiry creation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// HandleList returns all enquiries.
// @Summary List Enquiries
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Enquiry
// @Router /api/query [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Enquiry listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleMonthly returns enquiry counts per calendar month.
// @Summary Monthly Enquiry Counts
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MonthlyCount
// @Router /api/query/monthly [get]
func (h *Handler) HandleMonthly(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Monthly(c.Context())
	if err != nil {
		l.Error("Monthly aggregation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}
