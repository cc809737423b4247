package routes

import (
	"cleanpro-backend/config"
	"cleanpro-backend/controllers"
	"cleanpro-backend/repository"
	"cleanpro-backend/services"
	"cleanpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Repositories and services share one database handle.
	customerRepo := repository.NewCustomerRepository(config.DB)
	orderRepo := repository.NewOrderRepository(config.DB)
	serviceRepo := repository.NewServiceRepository(config.DB)
	inventoryRepo := repository.NewInventoryRepository(config.DB)
	billingRepo := repository.NewBillingRepository(config.DB)

	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(orderRepo, customerRepo, serviceRepo)
	billingSvc := services.NewBillingService(billingRepo, orderRepo, customerRepo)
	recipeSvc := services.NewRecipeService(serviceRepo, inventoryRepo)
	inventorySvc := services.NewInventoryService(inventoryRepo)
	reminderSvc := services.NewReminderService(config.DB)

	customerCtl := controllers.NewCustomerController(customerSvc, orderSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	billingCtl := controllers.NewBillingController(billingSvc)
	serviceCtl := controllers.NewServiceController(serviceRepo, recipeSvc)
	inventoryCtl := controllers.NewInventoryController(inventorySvc)
	reminderCtl := controllers.NewReminderController(reminderSvc, customerRepo)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerCtl.CreateCustomer)
			customers.GET("", customerCtl.GetCustomers)
			customers.GET("/:id", customerCtl.GetCustomer)
			customers.PUT("/:id", customerCtl.UpdateCustomer)
			customers.DELETE("/:id", customerCtl.DeleteCustomer)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderCtl.CreateOrder)
			orders.GET("", orderCtl.GetOrders)
			orders.GET("/:id", orderCtl.GetOrder)
			orders.PUT("/:id", orderCtl.UpdateOrder)
			orders.PATCH("/:id/status", orderCtl.UpdateOrderStatus)
			orders.DELETE("/:id", orderCtl.DeleteOrder)
		}

		// Billing routes
		invoices := api.Group("/invoices")
		{
			invoices.GET("", billingCtl.GetInvoices)
			invoices.GET("/:id", billingCtl.GetInvoice)
		}
		api.POST("/payments", billingCtl.RecordPayment)
		api.GET("/payments", billingCtl.GetPayments)
		api.GET("/debtors", billingCtl.GetDebtors)

		// Service catalog routes
		catalog := api.Group("/services")
		{
			catalog.POST("", serviceCtl.CreateService)
			catalog.GET("", serviceCtl.GetServices)
			catalog.GET("/:id", serviceCtl.GetService)
			catalog.PUT("/:id", serviceCtl.UpdateService)
			catalog.DELETE("/:id", serviceCtl.DeleteService)
			catalog.GET("/:id/materials", serviceCtl.GetServiceMaterials)
			catalog.PUT("/:id/materials", serviceCtl.UpdateServiceMaterials)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", inventoryCtl.CreateInventoryItem)
			inventory.GET("", inventoryCtl.GetInventoryItems)
			inventory.GET("/:id", inventoryCtl.GetInventoryItem)
			inventory.PUT("/:id", inventoryCtl.UpdateInventoryItem)
			inventory.DELETE("/:id", inventoryCtl.DeleteInventoryItem)
		}

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("/send", reminderCtl.SendReminder)
			reminders.GET("/logs", reminderCtl.GetReminderLogs)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("/update-business", controllers.UpdateBusinessProfile)
			profile.PUT("/update-hours", controllers.UpdateWorkingHours)
			profile.PUT("/update-notifications", controllers.UpdateNotifications)
		}
	}

	return r
}
