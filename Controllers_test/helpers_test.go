package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
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

const testSignature = "t=123,v1=test"

// fakeGateway stands in for the processor. VerifyEvent accepts only
// the test signature and decodes the payload as a PaymentEvent.
type fakeGateway struct {
	failCreate bool
	created    int
}

func (f *fakeGateway) CreateIntent(_ context.Context, orderID, cartSession string, amount decimal.Decimal) (*services.PaymentIntent, error) {
	if f.failCreate {
		return nil, errors.New("processor unreachable")
	}
	f.created++
	return &services.PaymentIntent{
		ID:           fmt.Sprintf("pi_test_%d", f.created),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", f.created),
	}, nil
}

func (f *fakeGateway) VerifyEvent(payload []byte, signatureHeader string) (*services.PaymentEvent, error) {
	if signatureHeader != testSignature {
		return nil, errors.New("invalid signature")
	}
	var event services.PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

type fakeSender struct {
	fail     bool
	contacts []models.ContactMessage
	subs     []models.SubscriptionRequest
}

func (f *fakeSender) SendContactMessage(msg models.ContactMessage) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.contacts = append(f.contacts, msg)
	return nil
}

func (f *fakeSender) SendSubscriptionRequest(req models.SubscriptionRequest) error {
	if f.fail {
		return errors.New("smtp unreachable")
	}
	f.subs = append(f.subs, req)
	return nil
}

type testEnv struct {
	router  *gin.Engine
	store   *storage.GormStore
	carts   cart.Store
	gateway *fakeGateway
	sender  *fakeSender
	cookies []*http.Cookie
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	// A second pooled connection would see its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.MenuItem{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	store := storage.NewGormStore(db)
	carts := cart.NewMemoryStore()
	gateway := &fakeGateway{}
	sender := &fakeSender{}
	checkout := services.NewCheckoutService(store, carts, gateway)

	r := router.SetupRouter(router.Deps{
		Store:        store,
		Carts:        carts,
		Checkout:     checkout,
		Gateway:      gateway,
		Sender:       sender,
		ContactPhone: "+39 06 1234 5678",
	})

	return &testEnv{router: r, store: store, carts: carts, gateway: gateway, sender: sender}
}

func (e *testEnv) seedMenuItem(t *testing.T, id, name, price, category string) {
	t.Helper()
	item := models.MenuItem{
		ID:          id,
		Name:        name,
		Description: name,
		Price:       decimal.RequireFromString(price),
		Image:       "/images/" + id + ".jpg",
		Category:    category,
		Available:   1,
	}
	if err := e.store.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}
}

// do performs a request, carrying the session cookie across calls the
// way a browser would. Extra arguments are header key/value pairs.
func (e *testEnv) do(t *testing.T, method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, path, bytes.NewBuffer(body))
	} else {
		req, err = http.NewRequest(method, path, nil)
	}
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, ck := range e.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		e.setCookie(ck)
	}
	return w
}

func (e *testEnv) setCookie(ck *http.Cookie) {
	for i, existing := range e.cookies {
		if existing.Name == ck.Name {
			e.cookies[i] = ck
			return
		}
	}
	e.cookies = append(e.cookies, ck)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
