package services

import (
	"time"

	"krishiseva/internal/models"

	"go.uber.org/zap"
)

// Routing keys for order lifecycle events.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// OrderEvent is the message published after every order mutation.
type OrderEvent struct {
	Event       string             `json:"event"`
	OrderID     string             `json:"orderId"`
	BuyerID     string             `json:"buyerId"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// EventPublisher delivers events to a broker. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// OrderMetrics receives order lifecycle counts.
type OrderMetrics interface {
	OrderCreated()
	OrderCancelled()
	OrderStatusChanged(status string)
}

type noopOrderMetrics struct{}

func (noopOrderMetrics) OrderCreated()             {}
func (noopOrderMetrics) OrderCancelled()           {}
func (noopOrderMetrics) OrderStatusChanged(string) {}

// publishOrderEvent is best effort: a broker failure is logged, never returned.
func publishOrderEvent(p EventPublisher, log *zap.Logger, event string, order *models.Order, at time.Time) {
	if p == nil {
		return
	}
	msg := OrderEvent{
		Event:       event,
		OrderID:     order.ID,
		BuyerID:     order.BuyerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  at,
	}
	if err := p.Publish(event, msg); err != nil {
		log.Warn("failed to publish order event",
			zap.String("event", event),
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}
