package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AgtechDS/menuserve/cart"
	"github.com/AgtechDS/menuserve/models"
	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports the checkout fields that failed validation.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return "invalid checkout data: " + strings.Join(keys, ", ")
}

// CustomerDetails are the customer-entered delivery fields.
type CustomerDetails struct {
	Name    string `json:"customer_name"`
	Phone   string `json:"customer_phone"`
	Email   string `json:"customer_email"`
	Address string `json:"delivery_address"`
	ZipCode string `json:"zip_code"`
	City    string `json:"city"`
	Notes   string `json:"notes"`
}

// CheckoutResult is handed to the client to drive the hosted payment flow.
type CheckoutResult struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

// CheckoutService assembles orders from carts and reconciles them with
// the payment processor's confirmation events.
type CheckoutService struct {
	orders  storage.OrderStore
	carts   cart.Store
	gateway PaymentGateway
	Flows   *FlowTracker
}

func NewCheckoutService(orders storage.OrderStore, carts cart.Store, gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{
		orders:  orders,
		carts:   carts,
		gateway: gateway,
		Flows:   NewFlowTracker(),
	}
}

// BeginCheckout validates the cart and customer data, creates the
// pending order with a snapshot of the cart lines, and requests a
// payment intent scoped to the order. Nothing is created when
// validation fails. On a processor error the order stays pending and
// the flow returns to idle so the customer can retry.
func (s *CheckoutService) BeginCheckout(ctx context.Context, sessionID string, details CustomerDetails) (*CheckoutResult, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}
	if err := s.Flows.Begin(sessionID); err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(c.Items)
	if err != nil {
		s.Flows.Abort(sessionID)
		return nil, fmt.Errorf("snapshot cart items: %w", err)
	}

	order := &models.Order{
		CustomerName:    details.Name,
		CustomerPhone:   details.Phone,
		DeliveryAddress: details.Address,
		City:            details.City,
		ZipCode:         details.ZipCode,
		Items:           string(snapshot),
		Total:           c.Total,
	}
	if details.Email != "" {
		order.CustomerEmail = &details.Email
	}
	if details.Notes != "" {
		order.Notes = &details.Notes
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.Flows.Abort(sessionID)
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, order.ID, sessionID, order.Total)
	if err != nil {
		s.Flows.Abort(sessionID)
		return nil, err
	}

	if err := s.orders.UpdateOrderPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		s.Flows.Abort(sessionID)
		return nil, err
	}

	s.Flows.Ready(sessionID)
	utils.InfoLogger.Printf("checkout started: order %s, intent %s, total %s",
		order.ID, intent.ID, utils.FormatCurrencyEUR(order.Total))

	return &CheckoutResult{
		OrderID:      order.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// HandlePaymentEvent applies a verified processor event. This is the
// only code path that may mark an order completed. The processor
// delivers events at least once, so applying completed to an
// already-completed order is a no-op.
func (s *CheckoutService) HandlePaymentEvent(ctx context.Context, event *PaymentEvent) error {
	if event.Type != EventPaymentSucceeded {
		return nil
	}
	if event.OrderID == "" {
		utils.InfoLogger.Printf("payment event %s without order correlation, ignoring", event.IntentID)
		return nil
	}

	order, err := s.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		return err
	}
	if order.Status == models.OrderStatusCompleted {
		return nil
	}

	if err := s.orders.UpdateOrderStatus(ctx, event.OrderID, models.OrderStatusCompleted); err != nil {
		return err
	}

	// The paid cart must not survive the confirmation.
	if event.CartSession != "" {
		if err := s.carts.Delete(ctx, event.CartSession); err != nil {
			utils.ErrorLogger.Printf("failed to clear cart for session %s: %v", event.CartSession, err)
		}
		s.Flows.Complete(event.CartSession)
	}

	utils.InfoLogger.Printf("order %s completed via payment intent %s", event.OrderID, event.IntentID)
	return nil
}

func validateDetails(details CustomerDetails) error {
	fields := make(map[string]string)
	required := map[string]string{
		"customer_name":    details.Name,
		"customer_phone":   details.Phone,
		"delivery_address": details.Address,
		"zip_code":         details.ZipCode,
		"city":             details.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[field] = "this field is required"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
