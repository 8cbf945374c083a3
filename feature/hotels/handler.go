package hotels

import (
	"travel-admin/core/httperr"
	"travel-admin/core/logger"
	"travel-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for hotels.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the hotel routes.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/api/admin/hotels", protect)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// parseInput reads the multipart form into a service Input. Malformed
// JSON-encoded sub-fields become empty defaults.
func parseInput(c *fiber.Ctx) Input {
	in := Input{
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		Location:       c.FormValue("location"),
		PricePerNight:  utils.ToFloat(c.FormValue("pricePerNight")),
		Rating:         utils.ToFloat(c.FormValue("rating")),
		Amenities:      utils.JSONList(c.FormValue("amenities")),
		RetainedImages: utils.JSONList(c.FormValue("existingImages")),
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		in.Files = form.File["images"]
	}
	return in
}

// HandleList returns all hotels.
// @Summary List Hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Hotel
// @Router /api/admin/hotels [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Hotel listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleGet returns one hotel.
// @Summary Get Hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} models.Hotel
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/hotels/{id} [get]
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

// HandleCreate stores a new hotel with its uploaded images.
// @Summary Create Hotel
// @Tags hotels
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Hotel
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/admin/hotels [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Create(c.Context(), parseInput(c))
	if err != nil {
		l.Error("Hotel creation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleUpdate reconciles the hotel's images and persists the merged record.
// @Summary Update Hotel
// @Tags hotels
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} models.Hotel
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/hotels/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	out, err := h.service.Update(c.Context(), uint(id), parseInput(c))
	if err != nil {
		l.Error("Hotel update failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleDelete purges the hotel's images and removes the record.
// @Summary Delete Hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/hotels/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l.Error("Hotel deletion failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "hotel deleted"})
}
