package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func addBody(t *testing.T, id string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]string{"id": id})
	assert.NoError(t, err)
	return b
}

func quantityBody(t *testing.T, q int) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]int{"quantity": q})
	assert.NoError(t, err)
	return b
}

func TestCartLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	env.seedMenuItem(t, "m1", "Bruschetta al Pomodoro", "1.00", "antipasti")
	env.seedMenuItem(t, "m3", "Tagliata di Manzo", "4.00", "secondi")

	// Empty cart on first contact, and a session cookie is minted.
	w := env.do(t, "GET", "/api/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, env.cookies)

	// Two of item 1, one of item 3.
	w = env.do(t, "POST", "/api/cart/items", addBody(t, "m1"))
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, "POST", "/api/cart/items", addBody(t, "m1"))
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, "POST", "/api/cart/items", addBody(t, "m3"))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["item_count"])
	total := decimal.RequireFromString(data["total"].(string))
	assert.True(t, total.Equal(decimal.RequireFromString("6.00")), "expected total 6.00, got %s", total)

	// Removing item 1 leaves item 3 only.
	w = env.do(t, "DELETE", "/api/cart/items/m1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	data = resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)
	assert.Equal(t, "m3", items[0].(map[string]interface{})["id"])
	assert.Equal(t, float64(1), data["item_count"])
	total = decimal.RequireFromString(data["total"].(string))
	assert.True(t, total.Equal(decimal.RequireFromString("4.00")))
}

func TestCartUpdateQuantity(t *testing.T) {
	env := setupTestEnv(t)
	env.seedMenuItem(t, "m1", "Pizza Margherita", "9.00", "pizze")

	env.do(t, "POST", "/api/cart/items", addBody(t, "m1"))
	w := env.do(t, "PATCH", "/api/cart/items/m1", quantityBody(t, 4))
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["item_count"])

	// Quantity zero removes the line.
	w = env.do(t, "PATCH", "/api/cart/items/m1", quantityBody(t, 0))
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeEnvelope(t, w)
	data = resp["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.Equal(t, float64(0), data["item_count"])
}

func TestCartRejectsUnknownAndUnavailableItems(t *testing.T) {
	env := setupTestEnv(t)
	env.seedMenuItem(t, "m1", "Pizza Margherita", "9.00", "pizze")
	if err := env.store.DB.Table("menu_items").Where("id = ?", "m1").Update("available", 0).Error; err != nil {
		t.Fatalf("failed to flag item unavailable: %v", err)
	}

	w := env.do(t, "POST", "/api/cart/items", addBody(t, "missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, "POST", "/api/cart/items", addBody(t, "m1"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClearCart(t *testing.T) {
	env := setupTestEnv(t)
	env.seedMenuItem(t, "m1", "Tiramisù", "5.00", "dolci")

	env.do(t, "POST", "/api/cart/items", addBody(t, "m1"))
	w := env.do(t, "DELETE", "/api/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, "GET", "/api/cart", nil)
	resp := decodeEnvelope(t, w)
	data := resp["data"].(map[string]interface{})
	assert.Empty(t, data["items"])
	assert.Equal(t, float64(0), data["item_count"])
}
