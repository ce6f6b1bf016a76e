package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/utils"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

// CreatePaymentIntent -> validate the order data, create the pending
// order and request a processor intent for it. An empty cart never
// reaches the processor: the client is told to go back to the cart.
func (cc *CheckoutController) CreatePaymentIntent(c *gin.Context) {
	var details services.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionID := Session(c)
	result, err := cc.Checkout.BeginCheckout(c.Request.Context(), sessionID, details)

	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{
			"status":   false,
			"message":  "cart is empty",
			"redirect": "/cart",
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  false,
			"message": "Invalid order data",
			"errors":  vErr.Fields,
		})
	case errors.Is(err, services.ErrCheckoutInFlight):
		utils.RespondError(c, http.StatusConflict, err)
	case err != nil:
		utils.ErrorLogger.Printf("error creating payment intent: %v", err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("error creating payment intent, please retry"))
	default:
		utils.RespondJSON(c, http.StatusOK, "Payment intent created", result)
	}
}

// GetCheckoutState -> the session's checkout phase
func (cc *CheckoutController) GetCheckoutState(c *gin.Context) {
	sessionID := Session(c)
	utils.RespondJSON(c, http.StatusOK, "Checkout state", gin.H{
		"phase": cc.Checkout.Flows.Phase(sessionID),
	})
}

// ReportPaymentSubmitted -> the client has handed the payment details
// to the processor's hosted flow. Blocks a duplicate submission.
func (cc *CheckoutController) ReportPaymentSubmitted(c *gin.Context) {
	sessionID := Session(c)

	if err := cc.Checkout.Flows.Submit(sessionID); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment submitted", gin.H{
		"phase": cc.Checkout.Flows.Phase(sessionID),
	})
}

// ReportPaymentFailed -> the processor declined; the intent stays
// usable and the customer may retry. This is a UX signal only, it
// never touches the order status.
func (cc *CheckoutController) ReportPaymentFailed(c *gin.Context) {
	sessionID := Session(c)

	cc.Checkout.Flows.Fail(sessionID)
	utils.RespondJSON(c, http.StatusOK, "Payment failure recorded", gin.H{
		"phase": cc.Checkout.Flows.Phase(sessionID),
	})
}
