package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

type OrderController struct {
	Orders storage.OrderStore
}

func NewOrderController(orders storage.OrderStore) *OrderController {
	return &OrderController{Orders: orders}
}

// GetOrderByID -> detail of one order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Orders.GetOrder(c.Request.Context(), c.Param("order_id"))
	if errors.Is(err, storage.ErrOrderNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
