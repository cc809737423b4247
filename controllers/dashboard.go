package controllers

import (
	"net/http"
	"time"

	"cleanpro-backend/config"
	"cleanpro-backend/models"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
)

const dashboardCacheKey = "dashboard:overview"

type TopDebtor struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	OutstandingDebt float64 `json:"outstandingDebt"`
}

type LowStockItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	MinLevel float64 `json:"minLevel"`
	Unit     string  `json:"unit"`
}

type DashboardOverview struct {
	TotalCustomers  int64          `json:"totalCustomers"`
	ActiveOrders    int64          `json:"activeOrders"`
	OrdersDueToday  int64          `json:"ordersDueToday"`
	MonthlyRevenue  float64        `json:"monthlyRevenue"`
	OutstandingDebt float64        `json:"outstandingDebt"`
	LowStockItems   []LowStockItem `json:"lowStockItems"`
	TopDebtors      []TopDebtor    `json:"topDebtors"`
}

// GetDashboardOverview aggregates the landing page numbers. The result is
// cached for five minutes; a cold or unreachable cache falls through to the
// database.
func GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()

	if config.Cache != nil {
		var cached DashboardOverview
		if config.Cache.GetJSON(ctx, dashboardCacheKey, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	var overview DashboardOverview

	config.DB.Model(&models.Customer{}).Count(&overview.TotalCustomers)

	config.DB.Model(&models.Order{}).
		Where("status IN ?", []models.OrderStatus{models.OrderPending, models.OrderInProgress, models.OrderReady}).
		Count(&overview.ActiveOrders)

	today := utils.BeginningOfDay(time.Now())
	config.DB.Model(&models.Order{}).
		Where("due_date >= ? AND due_date < ? AND status NOT IN ?",
			today, today.Add(24*time.Hour),
			[]models.OrderStatus{models.OrderDelivered, models.OrderCancelled}).
		Count(&overview.OrdersDueToday)

	firstOfMonth := utils.BeginningOfMonth(time.Now())
	config.DB.Model(&models.Payment{}).
		Where("paid_at >= ?", firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&overview.MonthlyRevenue)

	config.DB.Model(&models.Customer{}).
		Select("COALESCE(SUM(outstanding_debt), 0)").Scan(&overview.OutstandingDebt)

	config.DB.Raw(`
        SELECT name, quantity, min_level, unit FROM inventory_items
        WHERE quantity <= min_level
        ORDER BY quantity / NULLIF(min_level, 0)
        LIMIT 10
    `).Scan(&overview.LowStockItems)

	config.DB.Raw(`
        SELECT full_name AS name, phone, outstanding_debt FROM customers
        WHERE outstanding_debt > 0
        ORDER BY outstanding_debt DESC
        LIMIT 5
    `).Scan(&overview.TopDebtors)

	if config.Cache != nil {
		config.Cache.SetJSON(ctx, dashboardCacheKey, overview, 5*time.Minute)
	}

	c.JSON(http.StatusOK, overview)
}
