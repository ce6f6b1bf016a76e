package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Intent metadata keys used to correlate processor events back to our
// records.
const (
	metaOrderID     = "order_id"
	metaCartSession = "cart_session"
)

// EventPaymentSucceeded is the only event type that may complete an order.
const EventPaymentSucceeded = "payment_intent.succeeded"

// PaymentIntent is the client-usable handle returned by the processor.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentEvent is a verified asynchronous notification from the
// processor. OrderID and CartSession are only set for events that
// carry our correlation metadata.
type PaymentEvent struct {
	Type        string
	IntentID    string
	OrderID     string
	CartSession string
}

// PaymentGateway is the payment processor boundary: create an intent
// for a monetary amount tagged with correlation metadata, and verify
// and decode a signed server-to-server event.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, orderID, cartSession string, amount decimal.Decimal) (*PaymentIntent, error)
	VerifyEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)
}

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	sc            *client.API
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{
		sc:            sc,
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, orderID, cartSession string, amount decimal.Decimal) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(amount)),
		Currency: stripe.String(string(stripe.CurrencyEUR)),
	}
	params.Context = ctx
	params.AddMetadata(metaOrderID, orderID)
	params.AddMetadata(metaCartSession, cartSession)

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook event: %w", err)
	}

	ev := &PaymentEvent{Type: string(event.Type)}
	if ev.Type != EventPaymentSucceeded {
		return ev, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent from event: %w", err)
	}
	ev.IntentID = pi.ID
	ev.OrderID = pi.Metadata[metaOrderID]
	ev.CartSession = pi.Metadata[metaCartSession]
	return ev, nil
}

// amountInCents converts a euro amount to the integer minor units the
// processor expects, rounding to the nearest cent.
func amountInCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
