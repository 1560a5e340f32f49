package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"krishiseva/internal/apperror"
	"krishiseva/internal/models"
	"krishiseva/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxNoteLength = 500

// OrderItemInput is one requested line. TotalPrice is ignored and always
// recomputed from Quantity and PricePerKg.
type OrderItemInput struct {
	ProductID   int     `json:"productId" validate:"gte=0"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=1"`
	PricePerKg  float64 `json:"pricePerKg" validate:"gte=0"`
	TotalPrice  float64 `json:"totalPrice"`
	FarmerName  string  `json:"farmerName" validate:"required"`
}

// AddressInput is an explicit delivery address supplied at checkout.
type AddressInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// CreateOrderInput carries a checkout request.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items"`
	DeliveryAddress *AddressInput    `json:"deliveryAddress"`
	Notes           string           `json:"notes"`
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	publisher EventPublisher
	metrics   OrderMetrics
	validate  *validator.Validate
	log       *zap.Logger
	now       func() time.Time
}

// NewOrderService creates a new OrderService. publisher and metrics may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, publisher EventPublisher, metrics OrderMetrics, log *zap.Logger) *OrderService {
	if metrics == nil {
		metrics = noopOrderMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		publisher: publisher,
		metrics:   metrics,
		validate:  validator.New(),
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// CreateOrder places an order for buyerID. Line totals and the order total are
// computed here; client-supplied totals are discarded.
func (s *OrderService) CreateOrder(ctx context.Context, buyerID string, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, apperror.New(apperror.EmptyOrder, "Order must contain at least one item")
	}
	for i := range in.Items {
		if err := s.validate.Struct(in.Items[i]); err != nil {
			return nil, apperror.Wrap(apperror.Validation, fmt.Sprintf("Invalid order item at position %d", i+1), err)
		}
	}
	if utf8.RuneCountInString(in.Notes) > maxNoteLength {
		return nil, apperror.New(apperror.Validation, "Notes cannot exceed 500 characters")
	}

	buyer, err := s.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.BuyerNotFound, "User not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load buyer", err)
	}
	if !buyer.HasDeliveryDetails() {
		return nil, apperror.New(apperror.ProfileIncomplete, "Please complete your profile (phone and address) before placing an order")
	}

	address, err := resolveDeliveryAddress(buyer, in.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		lineTotal := decimal.NewFromFloat(item.PricePerKg).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: strings.TrimSpace(item.ProductName),
			Quantity:    item.Quantity,
			PricePerKg:  item.PricePerKg,
			TotalPrice:  lineTotal.InexactFloat64(),
			FarmerName:  strings.TrimSpace(item.FarmerName),
		})
	}

	now := s.now()
	order := &models.Order{
		ID:              uuid.New().String(),
		BuyerID:         buyer.ID,
		BuyerName:       buyer.Name,
		BuyerEmail:      buyer.Email,
		Items:           items,
		TotalAmount:     total.InexactFloat64(),
		Status:          models.StatusPending,
		DeliveryAddress: address,
		PaymentStatus:   models.PaymentPending,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create order", err)
	}

	s.metrics.OrderCreated()
	s.log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("buyer_id", order.BuyerID),
		zap.Float64("total_amount", order.TotalAmount))
	publishOrderEvent(s.publisher, s.log, EventOrderCreated, order, now)

	return order, nil
}

// resolveDeliveryAddress prefers an explicit address with at least a street
// and city, then the buyer's saved address. The phone is always the buyer's.
func resolveDeliveryAddress(buyer *models.User, explicit *AddressInput) (models.DeliveryAddress, error) {
	if explicit != nil && strings.TrimSpace(explicit.Street) != "" && strings.TrimSpace(explicit.City) != "" {
		return models.DeliveryAddress{
			Street:  strings.TrimSpace(explicit.Street),
			City:    strings.TrimSpace(explicit.City),
			State:   strings.TrimSpace(explicit.State),
			Pincode: strings.TrimSpace(explicit.Pincode),
			Phone:   buyer.Phone,
		}, nil
	}
	saved := buyer.Address
	if strings.TrimSpace(saved.Street) == "" || strings.TrimSpace(saved.City) == "" {
		return models.DeliveryAddress{}, apperror.New(apperror.AddressRequired, "Delivery address is required")
	}
	return models.DeliveryAddress{
		Street:  saved.Street,
		City:    saved.City,
		State:   saved.State,
		Pincode: saved.Pincode,
		Phone:   buyer.Phone,
	}, nil
}

// ListOrders returns the buyer's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, buyerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to list orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetOrder returns an order owned by requesterID.
func (s *OrderService) GetOrder(ctx context.Context, requesterID, orderID string) (*models.Order, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != requesterID {
		return nil, apperror.New(apperror.Forbidden, "Unauthorized to view this order")
	}
	return order, nil
}

// SetStatus moves an order to status. Any authenticated user may advance an
// order; only the owning buyer may set it to cancelled. Cancelled is terminal.
func (s *OrderService) SetStatus(ctx context.Context, requesterID, orderID string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, apperror.New(apperror.InvalidStatus, "Invalid order status")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if status == models.StatusCancelled && order.BuyerID != requesterID {
		return nil, apperror.New(apperror.Forbidden, "Unauthorized to cancel this order")
	}
	if order.Status == models.StatusCancelled && status != models.StatusCancelled {
		return nil, apperror.New(apperror.InvalidTransition, "Cannot change status of a cancelled order")
	}

	previous := order.Status
	now := s.now()
	order.Status = status
	order.UpdatedAt = now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, s.updateError(err)
	}

	s.metrics.OrderStatusChanged(string(status))
	s.log.Info("order status changed",
		zap.String("order_id", order.ID),
		zap.String("requester_id", requesterID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))
	publishOrderEvent(s.publisher, s.log, EventOrderStatusChanged, order, now)

	return order, nil
}

// CancelOrder cancels a pending or confirmed order owned by requesterID.
func (s *OrderService) CancelOrder(ctx context.Context, requesterID, orderID, reason string) (*models.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperror.New(apperror.ReasonRequired, "Cancellation reason is required")
	}
	if utf8.RuneCountInString(reason) > maxNoteLength {
		return nil, apperror.New(apperror.Validation, "Cancellation reason cannot exceed 500 characters")
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != requesterID {
		return nil, apperror.New(apperror.Forbidden, "Unauthorized to cancel this order")
	}
	if !order.Status.Cancellable() {
		return nil, apperror.New(apperror.InvalidTransition, fmt.Sprintf("Cannot cancel order with status: %s", order.Status))
	}

	now := s.now()
	order.Status = models.StatusCancelled
	order.CancellationReason = reason
	order.CancelledAt = &now
	order.UpdatedAt = now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, s.updateError(err)
	}

	s.metrics.OrderCancelled()
	s.log.Info("order cancelled", zap.String("order_id", order.ID), zap.String("buyer_id", order.BuyerID))
	publishOrderEvent(s.publisher, s.log, EventOrderCancelled, order, now)

	return order, nil
}

func (s *OrderService) loadOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.NotFound, "Order not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to load order", err)
	}
	return order, nil
}

func (s *OrderService) updateError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperror.New(apperror.NotFound, "Order not found")
	}
	return apperror.Wrap(apperror.Internal, "failed to update order", err)
}
