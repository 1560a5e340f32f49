package handlers

import (
	"krishiseva/internal/middleware"
	"krishiseva/internal/models"
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
	log     *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the order routes. Every route requires requireAuth.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	orderRoutes := router.Group("/orders", requireAuth)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
}

// HandleCreateOrder places an order for the caller.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	identity := middleware.CurrentUser(c)
	order, err := h.service.CreateOrder(c.UserContext(), identity.UserID, req)
	if err != nil {
		return fail(c, h.log, err, "Failed to create order. Please try again.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully!",
		"order":   createdOrderView(order),
	})
}

// HandleGetOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)
	orders, err := h.service.ListOrders(c.UserContext(), identity.UserID)
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch orders. Please try again.")
	}

	views := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		views = append(views, orderListView(&orders[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(views),
		"orders":  views,
	})
}

// HandleGetOrderByID returns one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	identity := middleware.CurrentUser(c)
	order, err := h.service.GetOrder(c.UserContext(), identity.UserID, c.Params("id"))
	if err != nil {
		return fail(c, h.log, err, "Failed to fetch order. Please try again.")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   orderDetailView(order),
	})
}

// StatusRequest represents the request body for a status change.
type StatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	identity := middleware.CurrentUser(c)
	order, err := h.service.SetStatus(c.UserContext(), identity.UserID, c.Params("id"), models.OrderStatus(req.Status))
	if err != nil {
		return fail(c, h.log, err, "Failed to update order status. Please try again.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated successfully",
		"order": fiber.Map{
			"id":        order.ID,
			"status":    order.Status,
			"updatedAt": order.UpdatedAt,
		},
	})
}

// CancelRequest represents the request body for a cancellation.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// HandleCancelOrder cancels one of the caller's orders.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	var req CancelRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	identity := middleware.CurrentUser(c)
	order, err := h.service.CancelOrder(c.UserContext(), identity.UserID, c.Params("id"), req.Reason)
	if err != nil {
		return fail(c, h.log, err, "Failed to cancel order. Please try again.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order cancelled successfully",
		"order":   cancelledOrderView(order),
	})
}
