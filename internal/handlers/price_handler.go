package handlers

import (
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PriceHandler serves public crop price lookups.
type PriceHandler struct {
	service *services.PriceService
	log     *zap.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(service *services.PriceService, log *zap.Logger) *PriceHandler {
	return &PriceHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the crop price routes. None require a token.
func (h *PriceHandler) RegisterRoutes(router fiber.Router) {
	priceRoutes := router.Group("/cropprices")
	priceRoutes.Get("/", h.HandleGetPrices)
	priceRoutes.Get("/states", h.HandleGetStates)
	priceRoutes.Get("/districts", h.HandleGetDistricts)
	priceRoutes.Get("/commodities", h.HandleGetCommodities)
}

// HandleGetPrices lists prices filtered by state, district and commodity.
func (h *PriceHandler) HandleGetPrices(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), services.PriceFilter{
		State:     c.Query("state"),
		District:  c.Query("district"),
		Commodity: c.Query("commodity"),
	})
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch crop prices. Please try again.")
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"data":      result.Data,
		"source":    result.Source,
		"timestamp": result.Timestamp,
		"message":   result.Message,
	})
}

// HandleGetStates lists the states that have price data.
func (h *PriceHandler) HandleGetStates(c *fiber.Ctx) error {
	states, err := h.service.States(c.UserContext())
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch states. Please try again.")
	}
	return c.JSON(fiber.Map{"success": true, "data": states})
}

// HandleGetDistricts lists the districts of a state.
func (h *PriceHandler) HandleGetDistricts(c *fiber.Ctx) error {
	districts, err := h.service.Districts(c.UserContext(), c.Query("state"))
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch districts. Please try again.")
	}
	return c.JSON(fiber.Map{"success": true, "data": districts})
}

// HandleGetCommodities lists the commodities traded in a state or district.
func (h *PriceHandler) HandleGetCommodities(c *fiber.Ctx) error {
	commodities, err := h.service.Commodities(c.UserContext(), c.Query("state"), c.Query("district"))
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch commodities. Please try again.")
	}
	return c.JSON(fiber.Map{"success": true, "data": commodities})
}
