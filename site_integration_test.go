package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AgtechDS/menuserve/cart"
	"github.com/AgtechDS/menuserve/models"
	"github.com/AgtechDS/menuserve/router"
	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const integrationSignature = "t=456,v1=integration"

type stubGateway struct {
	created int
}

func (g *stubGateway) CreateIntent(_ context.Context, orderID, cartSession string, amount decimal.Decimal) (*services.PaymentIntent, error) {
	g.created++
	return &services.PaymentIntent{ID: "pi_integration", ClientSecret: "pi_integration_secret"}, nil
}

func (g *stubGateway) VerifyEvent(payload []byte, signatureHeader string) (*services.PaymentEvent, error) {
	if signatureHeader != integrationSignature {
		return nil, errors.New("invalid signature")
	}
	var event services.PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

type stubSender struct{}

func (stubSender) SendContactMessage(models.ContactMessage) error         { return nil }
func (stubSender) SendSubscriptionRequest(models.SubscriptionRequest) error { return nil }

// TestOrderingFlow walks the whole customer journey: browse the menu,
// fill a cart, request a payment intent and let the processor's
// confirmation complete the order.
func TestOrderingFlow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	seedMenu(db)

	store := storage.NewGormStore(db)
	carts := cart.NewMemoryStore()
	gateway := &stubGateway{}
	checkout := services.NewCheckoutService(store, carts, gateway)

	r := router.SetupRouter(router.Deps{
		Store:        store,
		Carts:        carts,
		Checkout:     checkout,
		Gateway:      gateway,
		Sender:       stubSender{},
		ContactPhone: "+39 06 1234 5678",
	})

	var cookies []*http.Cookie
	do := func(method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != nil {
			req, _ = http.NewRequest(method, path, bytes.NewBuffer(body))
		} else {
			req, _ = http.NewRequest(method, path, nil)
		}
		req.Header.Set("Content-Type", "application/json")
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Result().Cookies(); len(got) > 0 {
			cookies = got
		}
		return w
	}
	decode := func(w *httptest.ResponseRecorder) map[string]interface{} {
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
		return resp
	}

	// 1. Browse the seeded menu.
	w := do("GET", "/api/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	menu := decode(w)["data"].([]interface{})
	assert.NotEmpty(t, menu)
	first := menu[0].(map[string]interface{})
	itemID := first["id"].(string)

	// 2. Put two of the first dish in the cart.
	addJSON, _ := json.Marshal(map[string]string{"id": itemID})
	w = do("POST", "/api/cart/items", addJSON)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do("POST", "/api/cart/items", addJSON)
	assert.Equal(t, http.StatusOK, w.Code)
	cartData := decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), cartData["item_count"])

	// 3. Check out.
	details, _ := json.Marshal(map[string]string{
		"customer_name":    "Mario Rossi",
		"customer_phone":   "+39 123 456 7890",
		"delivery_address": "Via Roma 123",
		"zip_code":         "00100",
		"city":             "Roma",
	})
	w = do("POST", "/api/create-payment-intent", details)
	assert.Equal(t, http.StatusOK, w.Code)
	result := decode(w)["data"].(map[string]interface{})
	orderID := result["orderId"].(string)
	assert.Equal(t, "pi_integration_secret", result["clientSecret"])

	// The order is visible and pending while payment is in flight.
	w = do("GET", "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	orderData := decode(w)["data"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusPending, orderData["status"])

	// 4. The processor confirms the payment asynchronously.
	var session string
	for _, ck := range cookies {
		if ck.Name == "cart_session" {
			session = ck.Value
		}
	}
	assert.NotEmpty(t, session)

	event, _ := json.Marshal(services.PaymentEvent{
		Type:        services.EventPaymentSucceeded,
		IntentID:    "pi_integration",
		OrderID:     orderID,
		CartSession: session,
	})
	w = do("POST", "/api/webhook", event, "Stripe-Signature", integrationSignature)
	assert.Equal(t, http.StatusOK, w.Code)

	// 5. The order is completed and the cart is empty.
	w = do("GET", "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	orderData = decode(w)["data"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusCompleted, orderData["status"])

	w = do("GET", "/api/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cartData = decode(w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), cartData["item_count"])
}
