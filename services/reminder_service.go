// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cleanpro-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends debt reminders to customers carrying an outstanding
// balance. Delivery is fire-and-forget: failures are logged, never retried.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDebtReminders)

	c.Start()
	log.Println("Debt reminder scheduler started")
}

// SendDebtReminders walks every debtor, largest balance first, and sends a
// reminder on the preferred channel.
func (s *ReminderService) SendDebtReminders() {
	log.Println("Starting daily debt reminder processing...")

	var business models.Business
	if err := s.db.First(&business).Error; err != nil {
		log.Printf("No business profile configured, skipping reminders: %v", err)
		return
	}

	var debtors []models.Customer
	if err := s.db.Where("outstanding_debt > 0").
		Order("outstanding_debt DESC").
		Find(&debtors).Error; err != nil {
		log.Printf("Failed to fetch debtors: %v", err)
		return
	}

	for _, customer := range debtors {
		if customer.Phone == "" {
			continue
		}

		channel := "sms"
		if business.WhatsAppNotifications && strings.HasPrefix(customer.Phone, "+") {
			channel = "whatsapp"
		} else if !business.SMSNotifications {
			continue
		}

		message := DebtReminderMessage(business.Name, customer)
		if err := s.Dispatch(&customer, channel, message, customer.OutstandingDebt); err != nil {
			log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
		}
	}

	log.Println("Daily debt reminder processing completed")
}

// DebtReminderMessage renders the default reminder text for a debtor.
func DebtReminderMessage(businessName string, customer models.Customer) string {
	if businessName == "" {
		businessName = "CleanPro Laundry"
	}
	return fmt.Sprintf(
		"Hello %s,\n\nThis is a friendly reminder that you have an outstanding balance of ₦%.2f.\n\nPlease make payment at your earliest convenience.\n\nThank you,\n%s",
		customer.FullName, customer.OutstandingDebt, businessName,
	)
}

// Dispatch sends one reminder over the requested channel and records the
// attempt. channel is one of whatsapp, sms, email.
func (s *ReminderService) Dispatch(customer *models.Customer, channel, message string, amount float64) error {
	var sendErr error

	switch channel {
	case "whatsapp", "sms":
		sendErr = s.sendTwilio(customer.Phone, channel, message)
	case "email":
		// Email delivery is not wired to a provider yet; log and record.
		log.Printf("Email reminder to %s: %s", customer.Email, message)
	default:
		return fmt.Errorf("invalid reminder channel: %s", channel)
	}

	status := "sent"
	errorMsg := ""
	if sendErr != nil {
		status = "failed"
		errorMsg = sendErr.Error()
	}

	reminderLog := models.DebtReminderLog{
		CustomerID:   customer.ID,
		Channel:      channel,
		Message:      message,
		Amount:       amount,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}

	return sendErr
}

func (s *ReminderService) sendTwilio(phone, channel, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetTo("whatsapp:" + phone)
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetTo(phone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", phone)
	}
	return nil
}
