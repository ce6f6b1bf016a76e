package router

import (
	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/cart"
	"github.com/AgtechDS/menuserve/controllers"
	"github.com/AgtechDS/menuserve/middlewares"
	"github.com/AgtechDS/menuserve/services"
	"github.com/AgtechDS/menuserve/storage"
)

// Deps are the collaborators the HTTP layer is wired with.
type Deps struct {
	Store        storage.Store
	Carts        cart.Store
	Checkout     *services.CheckoutService
	Gateway      services.PaymentGateway
	Sender       services.MessageSender
	ContactPhone string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	menuCtrl := controllers.NewMenuController(d.Store)
	cartCtrl := controllers.NewCartController(d.Carts, d.Store)
	orderCtrl := controllers.NewOrderController(d.Store)
	checkoutCtrl := controllers.NewCheckoutController(d.Checkout)
	webhookCtrl := controllers.NewWebhookController(d.Gateway, d.Checkout)
	notificationCtrl := controllers.NewNotificationController(d.Sender, d.ContactPhone)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// Menu catalog (read-only)
		api.GET("/menu", menuCtrl.GetAllMenuItems)
		api.GET("/menu/:category", menuCtrl.GetMenuItemsByCategory)

		// Session cart
		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)

		// Checkout and orders
		api.POST("/create-payment-intent", checkoutCtrl.CreatePaymentIntent)
		api.GET("/checkout/state", checkoutCtrl.GetCheckoutState)
		api.POST("/checkout/submitted", checkoutCtrl.ReportPaymentSubmitted)
		api.POST("/checkout/failed", checkoutCtrl.ReportPaymentFailed)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		// Processor confirmation callback
		api.POST("/webhook", webhookCtrl.HandlePaymentWebhook)

		// Public forms trigger outbound email, keep them strict
		forms := api.Group("/")
		forms.Use(middlewares.NewStrictRateLimiter())
		{
			forms.POST("/contact", notificationCtrl.SendContactForm)
			forms.POST("/send-subscription-form", notificationCtrl.SendSubscriptionForm)
		}
	}

	return r
}
