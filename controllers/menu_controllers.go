package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgtechDS/menuserve/storage"
	"github.com/AgtechDS/menuserve/utils"
)

type MenuController struct {
	Menu storage.MenuStore
}

func NewMenuController(menu storage.MenuStore) *MenuController {
	return &MenuController{Menu: menu}
}

// GetAllMenuItems -> list the whole catalog
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Menu.ListMenuItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemsByCategory -> list the catalog filtered by category
func (mc *MenuController) GetMenuItemsByCategory(c *gin.Context) {
	category := c.Param("category")

	items, err := mc.Menu.ListMenuItemsByCategory(c.Request.Context(), category)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items for category: "+category, items)
}
