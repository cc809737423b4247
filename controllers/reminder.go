// controllers/reminder.go
package controllers

import (
	"net/http"

	"cleanpro-backend/config"
	"cleanpro-backend/models"
	"cleanpro-backend/repository"
	"cleanpro-backend/services"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SendReminderInput struct {
	CustomerID string `json:"customerId" binding:"required"`
	Channel    string `json:"channel" binding:"required,oneof=whatsapp sms email"`
	Message    string `json:"message"`
}

type ReminderController struct {
	reminders *services.ReminderService
	customers repository.CustomerRepository
}

func NewReminderController(reminders *services.ReminderService, customers repository.CustomerRepository) *ReminderController {
	return &ReminderController{reminders: reminders, customers: customers}
}

// SendReminder dispatches a one-off debt reminder to a single customer.
// An empty message falls back to the default template.
func (ctl *ReminderController) SendReminder(c *gin.Context) {
	var input SendReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := ctl.customers.GetByID(customerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if customer.OutstandingDebt <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer has no outstanding balance")
		return
	}

	message := input.Message
	if message == "" {
		var business models.Business
		config.DB.First(&business)
		message = services.DebtReminderMessage(business.Name, *customer)
	}

	if err := ctl.reminders.Dispatch(customer, input.Channel, message, customer.OutstandingDebt); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to send reminder: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder sent"})
}

// GetReminderLogs lists past reminder attempts, newest first.
func (ctl *ReminderController) GetReminderLogs(c *gin.Context) {
	var logs []models.DebtReminderLog
	if err := config.DB.Order("sent_at DESC").Limit(100).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, logs)
}
