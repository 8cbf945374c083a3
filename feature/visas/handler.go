package visas

import (
	"travel-admin/core/httperr"
	"travel-admin/core/logger"
	"travel-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for visas.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the visa routes.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/api/admin/visas", protect)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

func parseInput(c *fiber.Ctx) Input {
	in := Input{
		Country:           c.FormValue("country"),
		VisaType:          c.FormValue("visaType"),
		Description:       c.FormValue("description"),
		Price:             utils.ToFloat(c.FormValue("price")),
		ProcessingTime:    c.FormValue("processingTime"),
		RequiredDocuments: utils.JSONList(c.FormValue("requiredDocuments")),
		RetainedImage:     c.FormValue("existingImage"),
	}
	if fh, err := c.FormFile("image"); err == nil {
		in.File = fh
	}
	return in
}

// HandleList returns all visas.
// @Summary List Visas
// @Tags visas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Visa
// @Router /api/admin/visas [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Visa listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleGet returns one visa.
// @Summary Get Visa
// @Tags visas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Success 200 {object} models.Visa
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/visas/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	out, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleCreate stores a new visa offering.
// @Summary Create Visa
// @Tags visas
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Visa
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/admin/visas [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Create(c.Context(), parseInput(c))
	if err != nil {
		l.Error("Visa creation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleUpdate reconciles the visa image and persists the merged record.
// @Summary Update Visa
// @Tags visas
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Success 200 {object} models.Visa
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/visas/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	out, err := h.service.Update(c.Context(), uint(id), parseInput(c))
	if err != nil {
		l.Error("Visa update failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleDelete purges the visa's image and removes the record.
// @Summary Delete Visa
// @Tags visas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visa ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/visas/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l.Error("Visa deletion failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "visa deleted"})
}
