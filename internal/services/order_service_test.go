package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"krishiseva/internal/apperror"
	"krishiseva/internal/models"
	"krishiseva/internal/repositories"
	"krishiseva/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	users     *repositories.MemoryUserRepository
	orders    *repositories.MemoryOrderRepository
	publisher *recordingPublisher
	service   *services.OrderService
	buyer     *models.User
	clock     time.Time
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		users:     repositories.NewMemoryUserRepository(),
		orders:    repositories.NewMemoryOrderRepository(),
		publisher: &recordingPublisher{},
		clock:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	f.service = services.NewOrderService(f.orders, f.users, f.publisher, nil, nil).
		WithClock(func() time.Time { return f.clock })

	f.buyer = &models.User{
		ID:               "buyer-1",
		Name:             "Asha",
		Email:            "asha@example.com",
		Role:             models.RoleBuyer,
		Phone:            "9876543210",
		Address:          models.Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"},
		ProfileCompleted: true,
	}
	require.NoError(t, f.users.Create(context.Background(), f.buyer))
	return f
}

func sampleItems() []services.OrderItemInput {
	return []services.OrderItemInput{
		{ProductID: 1, ProductName: "Tomato", Quantity: 2, PricePerKg: 40, TotalPrice: 9999, FarmerName: "Ramesh"},
	}
}

func (f *orderFixture) placeOrder(t *testing.T) *models.Order {
	t.Helper()
	order, err := f.service.CreateOrder(context.Background(), f.buyer.ID, services.CreateOrderInput{Items: sampleItems()})
	require.NoError(t, err)
	return order
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{
		Items: []services.OrderItemInput{
			{ProductID: 1, ProductName: "Tomato", Quantity: 2, PricePerKg: 40, FarmerName: "Ramesh"},
			{ProductID: 7, ProductName: "Onion", Quantity: 3, PricePerKg: 0.1, FarmerName: "Sita"},
		},
		Notes: "Leave at the gate",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.PaymentPending, order.PaymentStatus)
	assert.Equal(t, 80.0, order.Items[0].TotalPrice)
	assert.Equal(t, 0.3, order.Items[1].TotalPrice)
	assert.Equal(t, 80.3, order.TotalAmount)
	assert.Equal(t, "Asha", order.BuyerName)
	assert.Equal(t, "asha@example.com", order.BuyerEmail)
	assert.Equal(t, "12 MG Road", order.DeliveryAddress.Street)
	assert.Equal(t, "9876543210", order.DeliveryAddress.Phone)
	assert.Equal(t, f.clock, order.CreatedAt)
	assert.Equal(t, []string{services.EventOrderCreated}, f.publisher.Keys())

	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.TotalAmount, stored.TotalAmount)
}

func TestOrderService_CreateOrderIgnoresClientTotals(t *testing.T) {
	f := newOrderFixture(t)

	order := f.placeOrder(t)

	assert.Equal(t, 80.0, order.TotalAmount)
	assert.Equal(t, 80.0, order.Items[0].TotalPrice)
}

func TestOrderService_CreateOrderExplicitAddress(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{
		Items:           sampleItems(),
		DeliveryAddress: &services.AddressInput{Street: "4 Farm Lane", City: "Nashik", Pincode: "422001"},
	})
	require.NoError(t, err)
	assert.Equal(t, "4 Farm Lane", order.DeliveryAddress.Street)
	assert.Equal(t, "Nashik", order.DeliveryAddress.City)
	assert.Equal(t, "9876543210", order.DeliveryAddress.Phone)

	// An address without a city falls back to the saved one
	order, err = f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{
		Items:           sampleItems(),
		DeliveryAddress: &services.AddressInput{Street: "4 Farm Lane"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pune", order.DeliveryAddress.City)
}

func TestOrderService_CreateOrderRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("empty order", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{})
		assert.True(t, apperror.Is(err, apperror.EmptyOrder))
		assert.Equal(t, "Order must contain at least one item", apperror.PublicMessage(err, ""))
	})

	t.Run("unknown buyer", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.service.CreateOrder(ctx, "ghost", services.CreateOrderInput{Items: sampleItems()})
		assert.True(t, apperror.Is(err, apperror.BuyerNotFound))
	})

	t.Run("incomplete profile", func(t *testing.T) {
		f := newOrderFixture(t)
		f.buyer.Phone = ""
		require.NoError(t, f.users.Update(ctx, f.buyer))

		_, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{Items: sampleItems()})
		assert.True(t, apperror.Is(err, apperror.ProfileIncomplete))
		assert.Equal(t, "Please complete your profile (phone and address) before placing an order", apperror.PublicMessage(err, ""))
	})

	t.Run("invalid quantity", func(t *testing.T) {
		f := newOrderFixture(t)
		items := sampleItems()
		items[0].Quantity = 0
		_, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{Items: items})
		assert.True(t, apperror.Is(err, apperror.Validation))
	})

	t.Run("negative price", func(t *testing.T) {
		f := newOrderFixture(t)
		items := sampleItems()
		items[0].PricePerKg = -1
		_, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{Items: items})
		assert.True(t, apperror.Is(err, apperror.Validation))
	})

	t.Run("long notes", func(t *testing.T) {
		f := newOrderFixture(t)
		notes := make([]rune, 501)
		for i := range notes {
			notes[i] = 'n'
		}
		_, err := f.service.CreateOrder(ctx, f.buyer.ID, services.CreateOrderInput{Items: sampleItems(), Notes: string(notes)})
		assert.True(t, apperror.Is(err, apperror.Validation))
	})
}

func TestOrderService_CreateOrderRepositoryFailure(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &models.User{
		ID: "buyer-1", Email: "a@example.com", Phone: "1", Address: models.Address{Street: "s", City: "c"},
	}))
	mockOrders := new(MockOrderRepository)
	mockOrders.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(errors.New("disk full")).Once()
	publisher := &recordingPublisher{}

	service := services.NewOrderService(mockOrders, users, publisher, nil, nil)
	_, err := service.CreateOrder(ctx, "buyer-1", services.CreateOrderInput{Items: sampleItems()})

	assert.Equal(t, apperror.Internal, apperror.KindOf(err))
	assert.Empty(t, publisher.Keys())
	mockOrders.AssertExpectations(t)
}

func TestOrderService_PublishFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.publisher.err = errors.New("broker down")

	order := f.placeOrder(t)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestOrderService_ListAndGet(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first := f.placeOrder(t)
	f.clock = f.clock.Add(time.Minute)
	second := f.placeOrder(t)

	orders, err := f.service.ListOrders(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	none, err := f.service.ListOrders(ctx, "someone-else")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	got, err := f.service.GetOrder(ctx, f.buyer.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = f.service.GetOrder(ctx, "someone-else", first.ID)
	assert.True(t, apperror.Is(err, apperror.Forbidden))
	assert.Equal(t, "Unauthorized to view this order", apperror.PublicMessage(err, ""))

	_, err = f.service.GetOrder(ctx, f.buyer.ID, "missing")
	assert.True(t, apperror.Is(err, apperror.NotFound))
	assert.Equal(t, "Order not found", apperror.PublicMessage(err, ""))
}

func TestOrderService_SetStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t)

	// Any authenticated user may advance an order.
	f.clock = f.clock.Add(time.Hour)
	updated, err := f.service.SetStatus(ctx, "seller-9", order.ID, models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.Equal(t, f.clock, updated.UpdatedAt)

	_, err = f.service.SetStatus(ctx, f.buyer.ID, order.ID, "lost")
	assert.True(t, apperror.Is(err, apperror.InvalidStatus))
	assert.Equal(t, "Invalid order status", apperror.PublicMessage(err, ""))

	// Only the buyer may cancel through a status change.
	_, err = f.service.SetStatus(ctx, "seller-9", order.ID, models.StatusCancelled)
	assert.True(t, apperror.Is(err, apperror.Forbidden))
	assert.Equal(t, "Unauthorized to cancel this order", apperror.PublicMessage(err, ""))

	cancelled, err := f.service.SetStatus(ctx, f.buyer.ID, order.ID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.CancelledAt)

	// Cancelled is terminal.
	_, err = f.service.SetStatus(ctx, "seller-9", order.ID, models.StatusDelivered)
	assert.True(t, apperror.Is(err, apperror.InvalidTransition))

	_, err = f.service.SetStatus(ctx, f.buyer.ID, "missing", models.StatusShipped)
	assert.True(t, apperror.Is(err, apperror.NotFound))

	assert.Equal(t, []string{
		services.EventOrderCreated,
		services.EventOrderStatusChanged,
		services.EventOrderStatusChanged,
	}, f.publisher.Keys())
}

func TestOrderService_CancelOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t)

	// A blank reason leaves the order untouched.
	_, err := f.service.CancelOrder(ctx, f.buyer.ID, order.ID, "   ")
	assert.True(t, apperror.Is(err, apperror.ReasonRequired))
	assert.Equal(t, "Cancellation reason is required", apperror.PublicMessage(err, ""))
	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	_, err = f.service.CancelOrder(ctx, "someone-else", order.ID, "changed my mind")
	assert.True(t, apperror.Is(err, apperror.Forbidden))

	_, err = f.service.CancelOrder(ctx, f.buyer.ID, "missing", "changed my mind")
	assert.True(t, apperror.Is(err, apperror.NotFound))

	f.clock = f.clock.Add(30 * time.Minute)
	cancelled, err := f.service.CancelOrder(ctx, f.buyer.ID, order.ID, " changed my mind ")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, "changed my mind", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, f.clock, *cancelled.CancelledAt)
	assert.Equal(t, f.clock, cancelled.UpdatedAt)

	_, err = f.service.CancelOrder(ctx, f.buyer.ID, order.ID, "again")
	assert.True(t, apperror.Is(err, apperror.InvalidTransition))
	assert.Equal(t, "Cannot cancel order with status: cancelled", apperror.PublicMessage(err, ""))
	assert.Contains(t, f.publisher.Keys(), services.EventOrderCancelled)
}

func TestOrderService_CancelOrderAfterShipping(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t)

	_, err := f.service.SetStatus(ctx, f.buyer.ID, order.ID, models.StatusConfirmed)
	require.NoError(t, err)
	_, err = f.service.SetStatus(ctx, f.buyer.ID, order.ID, models.StatusShipped)
	require.NoError(t, err)

	_, err = f.service.CancelOrder(ctx, f.buyer.ID, order.ID, "too slow")
	assert.True(t, apperror.Is(err, apperror.InvalidTransition))
	assert.Equal(t, "Cannot cancel order with status: shipped", apperror.PublicMessage(err, ""))
}
