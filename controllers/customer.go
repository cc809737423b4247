package controllers

import (
	"net/http"

	"cleanpro-backend/services"
	"cleanpro-backend/utils"
	"cleanpro-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerController struct {
	customers *services.CustomerService
	orders    *services.OrderService
}

func NewCustomerController(customers *services.CustomerService, orders *services.OrderService) *CustomerController {
	return &CustomerController{customers: customers, orders: orders}
}

func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var form validation.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Create(form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusCreated, customer)
}

func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctl.customers.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := ctl.customers.Get(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	orders, err := ctl.orders.ListByCustomer(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": customer,
		"orders":   orders,
	})
}

func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var form validation.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Update(id, form)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := ctl.customers.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
