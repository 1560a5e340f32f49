package handlers

import (
	"krishiseva/internal/models"

	"github.com/gofiber/fiber/v2"
)

func userSummary(u *models.User) fiber.Map {
	return fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

func userProfile(u *models.User) fiber.Map {
	return fiber.Map{
		"id":               u.ID,
		"name":             u.Name,
		"email":            u.Email,
		"role":             u.Role,
		"phone":            u.Phone,
		"address":          u.Address,
		"profilePhoto":     u.ProfilePhoto,
		"profileCompleted": u.ProfileCompleted,
		"createdAt":        u.CreatedAt,
	}
}

func createdOrderView(o *models.Order) fiber.Map {
	return fiber.Map{
		"id":              o.ID,
		"items":           o.Items,
		"totalAmount":     o.TotalAmount,
		"status":          o.Status,
		"deliveryAddress": o.DeliveryAddress,
		"createdAt":       o.CreatedAt,
	}
}

func orderListView(o *models.Order) fiber.Map {
	return fiber.Map{
		"id":                 o.ID,
		"items":              o.Items,
		"totalAmount":        o.TotalAmount,
		"status":             o.Status,
		"paymentStatus":      o.PaymentStatus,
		"deliveryAddress":    o.DeliveryAddress,
		"createdAt":          o.CreatedAt,
		"updatedAt":          o.UpdatedAt,
		"cancellationReason": o.CancellationReason,
		"cancelledAt":        o.CancelledAt,
	}
}

func orderDetailView(o *models.Order) fiber.Map {
	view := orderListView(o)
	view["buyerName"] = o.BuyerName
	view["buyerEmail"] = o.BuyerEmail
	view["notes"] = o.Notes
	return view
}

func cancelledOrderView(o *models.Order) fiber.Map {
	return fiber.Map{
		"id":                 o.ID,
		"status":             o.Status,
		"cancellationReason": o.CancellationReason,
		"cancelledAt":        o.CancelledAt,
	}
}
