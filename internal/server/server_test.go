package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"krishiseva/internal/repositories"
	"krishiseva/internal/server"
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type capturePublisher struct {
	keys []string
}

func (p *capturePublisher) Publish(routingKey string, _ interface{}) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

func newTestApp(publisher services.EventPublisher) *fiber.App {
	return server.NewApp(server.Deps{
		Log:           zap.NewNop(),
		Users:         repositories.NewMemoryUserRepository(),
		Orders:        repositories.NewMemoryOrderRepository(),
		Publisher:     publisher,
		JWTSecret:     "server_test_secret",
		TokenTTL:      time.Hour,
		PriceCacheTTL: time.Minute,
		CORSOrigins:   "http://localhost:5173",
	})
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestOperationalEndpoints(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := request(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var root map[string]string
	require.NoError(t, json.Unmarshal(raw, &root))
	assert.Equal(t, "Active", root["status"])
	assert.Equal(t, server.Version, root["version"])

	resp, raw = request(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"status":"healthy"`)

	resp, raw = request(t, app, http.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Route not found"}`, string(raw))

	resp, raw = request(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "krishiseva_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestOrderFlowPublishesEvents(t *testing.T) {
	publisher := &capturePublisher{}
	app := newTestApp(publisher)

	resp, raw := request(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": "Ravi", "email": "ravi@x.com", "password": "secret1", "role": "Buyer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var signup struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &signup))

	resp, raw = request(t, app, http.MethodPut, "/api/auth/profile", signup.Token, map[string]interface{}{
		"phone":   "9876543210",
		"address": map[string]string{"street": "12 MG Road", "city": "Pune"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, raw = request(t, app, http.MethodPost, "/api/orders", signup.Token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"productId": 3, "productName": "Onion", "quantity": 5, "pricePerKg": 30, "farmerName": "Sita"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = request(t, app, http.MethodPost, "/api/orders/"+created.Order.ID+"/cancel", signup.Token, map[string]string{"reason": "duplicate"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	assert.Equal(t, []string{services.EventOrderCreated, services.EventOrderCancelled}, publisher.keys)

	_, raw = request(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Contains(t, string(raw), "krishiseva_orders_created_total 1")
	assert.Contains(t, string(raw), "krishiseva_orders_cancelled_total 1")
}

func TestOrderEventLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handle := server.OrderEventLogger(zap.New(core))

	body, err := json.Marshal(services.OrderEvent{
		Event:       services.EventOrderCreated,
		OrderID:     "order-1",
		BuyerID:     "buyer-1",
		Status:      "pending",
		TotalAmount: 80,
		OccurredAt:  time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, handle(amqp.Delivery{RoutingKey: services.EventOrderCreated, Body: body}))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "order-1", logs.All()[0].ContextMap()["order_id"])

	assert.Error(t, handle(amqp.Delivery{Body: []byte("not json")}))
	assert.Error(t, handle(amqp.Delivery{Body: []byte(`{"event":"order.created"}`)}))
}
