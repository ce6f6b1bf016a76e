package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AgtechDS/menuserve/cart"
	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

// SessionCookie identifies the cart session of a browser.
const SessionCookie = "cart_session"

type CartController struct {
	Carts cart.Store
	Menu  storage.MenuStore
}

func NewCartController(carts cart.Store, menu storage.MenuStore) *CartController {
	return &CartController{Carts: carts, Menu: menu}
}

// Session returns the session id from the cart cookie, minting a new
// one on first contact.
func Session(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(SessionCookie, id, int(cart.TTLCart.Seconds()), "/", "", false, true)
	return id
}

// GetCart -> the session's cart with derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := Session(c)

	current, err := cc.Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart", current)
}

// AddItem -> add one unit of a catalog item to the cart. The unit
// price always comes from the catalog, never from the client.
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		ID string `json:"id" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := cc.Menu.GetMenuItem(c.Request.Context(), body.ID)
	if errors.Is(err, storage.ErrMenuItemNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if item.Available == 0 {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("%s is currently not available", item.Name))
		return
	}

	sessionID := Session(c)
	current, err := cc.Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	current.AddItem(cart.Item{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Image: item.Image,
	})

	if err := cc.Carts.Save(c.Request.Context(), sessionID, current); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item added", current)
}

// UpdateItem -> set the exact quantity of a cart line; zero removes it
func (cc *CartController) UpdateItem(c *gin.Context) {
	type reqBody struct {
		Quantity *int `json:"quantity" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionID := Session(c)
	current, err := cc.Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	current.UpdateQuantity(c.Param("item_id"), *body.Quantity)

	if err := cc.Carts.Save(c.Request.Context(), sessionID, current); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", current)
}

// RemoveItem -> delete a cart line
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionID := Session(c)

	current, err := cc.Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	current.RemoveItem(c.Param("item_id"))

	if err := cc.Carts.Save(c.Request.Context(), sessionID, current); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed", current)
}

// ClearCart -> drop the whole cart
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID := Session(c)

	if err := cc.Carts.Delete(c.Request.Context(), sessionID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cart.New())
}
