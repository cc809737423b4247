package controllers

import (
	"net/http"

	"cleanpro-backend/models"
	"cleanpro-backend/services"
	"cleanpro-backend/utils"
	"cleanpro-backend/validation"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (ctl *OrderController) CreateOrder(c *gin.Context) {
	var form validation.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := ctl.orders.Create(form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusCreated, order)
}

func (ctl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctl.orders.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctl.orders.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *OrderController) UpdateOrder(c *gin.Context) {
	var form validation.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := ctl.orders.Update(c.Param("id"), form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, order)
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus advances an order along the lifecycle. Transitions
// outside the state machine are rejected with 409.
func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	order, err := ctl.orders.UpdateStatus(c.Param("id"), models.OrderStatus(input.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, order)
}

func (ctl *OrderController) DeleteOrder(c *gin.Context) {
	if err := ctl.orders.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
