package controllers

import (
	"net/http"
	"time"

	"cleanpro-backend/services"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

func (ctl *BillingController) GetInvoices(c *gin.Context) {
	invoices, err := ctl.billing.Invoices()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (ctl *BillingController) GetInvoice(c *gin.Context) {
	invoice, err := ctl.billing.Invoice(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (ctl *BillingController) RecordPayment(c *gin.Context) {
	var input services.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := ctl.billing.RecordPayment(input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	invalidateDashboard(c)
	c.JSON(http.StatusCreated, payment)
}

// GetPayments lists payments in a date window; defaults to the current
// month when from/to are omitted.
func (ctl *BillingController) GetPayments(c *gin.Context) {
	now := time.Now()
	start := utils.BeginningOfMonth(now)
	end := now.Add(time.Second)

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		start = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		end = parsed.Add(24 * time.Hour)
	}

	payments, err := ctl.billing.Payments(start, end)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (ctl *BillingController) GetDebtors(c *gin.Context) {
	debtors, err := ctl.billing.Debtors()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, debtors)
}
