package flights

import (
	"time"

	"travel-admin/core/httperr"
	"travel-admin/core/logger"
	"travel-admin/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for flights.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the flight routes. Search is public.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	app.Get("/api/flights/search", h.HandleSearch)

	group := app.Group("/api/admin/flights", protect)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// parseInput reads the multipart form into a service Input. Timestamps are
// RFC3339; malformed values become zero instants (lenient parsing).
func parseInput(c *fiber.Ctx) Input {
	departure, _ := time.Parse(time.RFC3339, c.FormValue("departureAt"))
	arrival, _ := time.Parse(time.RFC3339, c.FormValue("arrivalAt"))

	in := Input{
		Airline:      c.FormValue("airline"),
		FlightNumber: c.FormValue("flightNumber"),
		Origin:       c.FormValue("origin"),
		Destination:  c.FormValue("destination"),
		DepartureAt:  departure,
		ArrivalAt:    arrival,
		Price:        utils.ToFloat(c.FormValue("price")),
		SeatClass:    c.FormValue("seatClass"),
		RetainedLogo: c.FormValue("existingLogo"),
	}
	if fh, err := c.FormFile("logo"); err == nil {
		in.File = fh
	}
	return in
}

// HandleSearch filters flights by origin, destination, and optionally a
// departure date. A malformed date is ignored (lenient parsing).
// @Summary Search Flights
// @Tags flights
// @Produce json
// @Param from query string false "Origin substring"
// @Param to query string false "Destination substring"
// @Param date query string false "Departure date (YYYY-MM-DD)"
// @Success 200 {array} models.Flight
// @Router /api/flights/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	date, _ := time.Parse("2006-01-02", c.Query("date"))
	out, err := h.service.Search(c.Context(), c.Query("from"), c.Query("to"), date)
	if err != nil {
		l.Error("Flight search failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleList returns all flights.
// @Summary List Flights
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Flight
// @Router /api/admin/flights [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Flight listing failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleGet returns one flight.
// @Summary Get Flight
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/flights/{id} [get]
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

// HandleCreate stores a new flight listing.
// @Summary Create Flight
// @Tags flights
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.Flight
// @Failure 400 {object} map[string]string "Validation Error"
// @Router /api/admin/flights [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Create(c.Context(), parseInput(c))
	if err != nil {
		l.Error("Flight creation failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// HandleUpdate reconciles the flight's logo and persists the merged record.
// @Summary Update Flight
// @Tags flights
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Success 200 {object} models.Flight
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/flights/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	out, err := h.service.Update(c.Context(), uint(id), parseInput(c))
	if err != nil {
		l.Error("Flight update failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(out)
}

// HandleDelete purges the flight's logo and removes the record.
// @Summary Delete Flight
// @Tags flights
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flight ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/admin/flights/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l.Error("Flight deletion failed", zap.Error(err))
		return httperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "flight deleted"})
}
