package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

const maxWebhookBody = 64 * 1024

type WebhookController struct {
	Gateway  services.PaymentGateway
	Checkout *services.CheckoutService
}

func NewWebhookController(gateway services.PaymentGateway, checkout *services.CheckoutService) *WebhookController {
	return &WebhookController{Gateway: gateway, Checkout: checkout}
}

// HandlePaymentWebhook -> the processor's server-to-server
// confirmation callback. This is the authoritative path that marks an
// order completed; a bad signature rejects the event without touching
// any state.
func (wc *WebhookController) HandlePaymentWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	event, err := wc.Gateway.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		utils.ErrorLogger.Printf("webhook rejected: %v", err)
		utils.RespondError(c, http.StatusBadRequest, errors.New("webhook verification failed"))
		return
	}

	if err := wc.Checkout.HandlePaymentEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			utils.ErrorLogger.Printf("webhook for unknown order: intent %s", event.IntentID)
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("webhook processing failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
