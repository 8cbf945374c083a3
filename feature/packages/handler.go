package packages

import (
	"encoding/json"
	"strings"

	"travel-admin/core/httperr"
	"travel-admin/core/logger"
	"travel-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for travel packages.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the package routes. Search and the price list
// are public; everything else requires an admin session.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	app.Get("/api/packagesearch", h.HandleSearch)
	app.Get("/api/packageprices", h.HandlePrices)

	group := app.Group("/api/admin/packages", protect)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// parseActivities decodes the JSON-encoded activity array. Malformed input
// yields an empty itinerary.
func parseActivities(raw string) []ActivityInput {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []ActivityInput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// parseInput reads the multipart form into a service Input. Malformed
// JSON-encoded sub-fields become empty defaults.
func parseInput(c *fiber.Ctx) Input {
	in := Input{
		Title:             c.FormValue("title"),
		Description:       c.FormValue("description"),
		Location:          c.FormValue("location"),
		Category:          c.FormValue("category"),
		Price:             utils.ToFloat(c.FormValue("price")),
		Days:              utils.ToInt(c.FormValue("days")),
		Nights:            utils.ToInt(c.FormValue("nights")),
		Featured:          utils.ToBool(c.FormValue("featured")),
		Activities:        parseActivities(c.FormValue("activities")),
		RetainedThumbnail: c.FormValue("existingThumbnail"),
		RetainedImages:    utils.JSONList(c.FormValue("existingImages")),
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if thumbs := form.File["thumbnail"]; len(thumbs) > 0 {
			in.Thumbnail = thumbs[0]
		}
		in.Files = form.File["images"]
		in.ActivityFiles = form.File["activityImages"]
	}
	return in
}

// HandleSearch filters packages by title substring plus optional price
// bounds and duration, falling back to a title-only match when the
// narrowed query is empty.
// @Summary Search Packages
// @Tags packages
// @Produce json
// @Param title query string false "Title substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param days query int false "Exact duration in days"
// @Success 200 {array} models.Package
// @Router /api/packagesearch [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Search(c.Context(), SearchFilter{
		Title:    c.Query("title"),
		MinPrice: utils.ToFloat(c.Query("minPrice")),
		MaxPrice: utils.ToFloat(c.Query("maxPrice")),
		Days:     utils.ToInt(c.Query("days")),
	})
	if err != nil {
		l.Error("Package search failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandlePrices returns the distinct package prices in ascending order.
// @Summary List Package Prices
// @Tags packages
// @Produce json
// @Success 200 {array} number
// @Router /api/packageprices [get]
func (h *Handler) HandlePrices(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Prices(c.Context())
	if err != nil {
		l.Error("Package price listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleList returns all packages.
// @Summary List Packages
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Package
// @Router /api/admin/packages [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Package listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleGet returns one package.
// @Summary Get Package
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} models.Package
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/packages/{id} [get]
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

// HandleCreate stores a new package with its uploaded assets.
// @Summary Create Package
// @Tags packages
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Package
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/admin/packages [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Create(c.Context(), parseInput(c))
	if err != nil {
		l.Error("Package creation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleUpdate reconciles all of the package's image sets and persists the
// merged record.
// @Summary Update Package
// @Tags packages
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} models.Package
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/packages/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	out, err := h.service.Update(c.Context(), uint(id), parseInput(c))
	if err != nil {
		l.Error("Package update failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleDelete purges every image across all of the package's sets and
// removes the record.
// @Summary Delete Package
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/packages/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l.Error("Package deletion failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "package deleted"})
}
