package controllers

import (
	"net/http"

	"cleanpro-backend/services"
	"cleanpro-backend/utils"
	"cleanpro-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

func (ctl *InventoryController) CreateInventoryItem(c *gin.Context) {
	var form validation.InventoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctl.inventory.Create(form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusCreated, item)
}

func (ctl *InventoryController) GetInventoryItems(c *gin.Context) {
	items, err := ctl.inventory.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ctl *InventoryController) GetInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}

	item, err := ctl.inventory.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctl *InventoryController) UpdateInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}

	var form validation.InventoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := ctl.inventory.Update(id, form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, item)
}

func (ctl *InventoryController) DeleteInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inventory item ID")
		return
	}

	if err := ctl.inventory.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
