package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/models"
	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/utils"
)

type NotificationController struct {
	Sender services.MessageSender
	// ContactPhone is the fallback channel surfaced when email
	// delivery fails.
	ContactPhone string
}

func NewNotificationController(sender services.MessageSender, contactPhone string) *NotificationController {
	return &NotificationController{Sender: sender, ContactPhone: contactPhone}
}

// SendContactForm -> deliver the public contact form by email
func (nc *NotificationController) SendContactForm(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := nc.Sender.SendContactMessage(msg); err != nil {
		utils.ErrorLogger.Printf("contact form delivery failed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, nc.fallbackErr())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message sent", nil)
}

// SendSubscriptionForm -> deliver the platform subscription form by email
func (nc *NotificationController) SendSubscriptionForm(c *gin.Context) {
	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := nc.Sender.SendSubscriptionRequest(req); err != nil {
		utils.ErrorLogger.Printf("subscription form delivery failed: %v", err)
		utils.RespondError(c, http.StatusBadGateway, nc.fallbackErr())
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Form sent", nil)
}

func (nc *NotificationController) fallbackErr() error {
	return fmt.Errorf("we could not send your request right now, please call us at %s", nc.ContactPhone)
}
