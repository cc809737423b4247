// controllers/profile.go
package controllers

import (
	"net/http"

	"cleanpro-backend/config"
	"cleanpro-backend/models"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateBusinessInput struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

type UpdateNotificationsInput struct {
	WhatsAppNotifications *bool `json:"whatsAppNotifications"`
	SMSNotifications      *bool `json:"smsNotifications"`
	EmailNotifications    *bool `json:"emailNotifications"`
}

// There is a single business row; everything here operates on it.
func loadBusiness(c *gin.Context) (*models.Business, bool) {
	var business models.Business
	if err := config.DB.First(&business).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Business profile not configured")
		return nil, false
	}
	return &business, true
}

func GetProfile(c *gin.Context) {
	business, ok := loadBusiness(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, business)
}

func UpdateBusinessProfile(c *gin.Context) {
	business, ok := loadBusiness(c)
	if !ok {
		return
	}

	var input UpdateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != "" {
		business.Name = input.Name
	}
	if input.Address != "" {
		business.Address = input.Address
	}
	if input.Currency != "" {
		business.Currency = input.Currency
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, business)
}

func UpdateWorkingHours(c *gin.Context) {
	business, ok := loadBusiness(c)
	if !ok {
		return
	}

	var hours models.JSONB
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	business.WorkingHours = hours
	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}
	c.JSON(http.StatusOK, business)
}

func UpdateNotifications(c *gin.Context) {
	business, ok := loadBusiness(c)
	if !ok {
		return
	}

	var input UpdateNotificationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.WhatsAppNotifications != nil {
		business.WhatsAppNotifications = *input.WhatsAppNotifications
	}
	if input.SMSNotifications != nil {
		business.SMSNotifications = *input.SMSNotifications
	}
	if input.EmailNotifications != nil {
		business.EmailNotifications = *input.EmailNotifications
	}

	if err := config.DB.Save(business).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}
	c.JSON(http.StatusOK, business)
}
