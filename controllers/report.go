// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"cleanpro-backend/config"
	"cleanpro-backend/models"
	"cleanpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

type AnalyticsSummary struct {
	CurrentMonthRevenue float64           `json:"currentMonthRevenue"`
	MonthGrowth         float64           `json:"monthGrowth"`
	CurrentYearRevenue  float64           `json:"currentYearRevenue"`
	RevenueByMonth      []MonthlyRevenue  `json:"revenueByMonth"`
	TopServices         []ServiceSummary  `json:"topServices"`
	TopCustomers        []CustomerSummary `json:"topCustomers"`
	QuickStats          QuickStatistics   `json:"quickStats"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CustomerSummary struct {
	Name   string  `json:"name"`
	Orders int     `json:"orders"`
	Spent  float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalCustomers int64   `json:"totalCustomers"`
	TotalOrders    int64   `json:"totalOrders"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
	UnpaidOrders   int64   `json:"unpaidOrders"`
}

func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	firstOfMonth := utils.BeginningOfMonth(now)
	firstOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	currentMonthRevenue := rc.getRevenue(firstOfMonth, now)
	lastMonthRevenue := rc.getRevenue(firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	currentYearRevenue := rc.getRevenue(firstOfYear, now)

	monthGrowth := 0.0
	if lastMonthRevenue > 0 {
		monthGrowth = (currentMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	}

	// Last six months, oldest first
	revenueByMonth := make([]MonthlyRevenue, 0, 6)
	for i := 5; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		revenueByMonth = append(revenueByMonth, MonthlyRevenue{
			Month:   start.Format("Jan 2006"),
			Revenue: rc.getRevenue(start, end),
		})
	}

	var topServices []ServiceSummary
	config.DB.Raw(`
        SELECT service_name AS name, SUM(quantity) AS count, SUM(total_price) AS revenue
        FROM order_items
        GROUP BY service_name
        ORDER BY revenue DESC
        LIMIT 5
    `).Scan(&topServices)

	var topCustomers []CustomerSummary
	config.DB.Raw(`
        SELECT c.full_name AS name, COUNT(o.id) AS orders, COALESCE(SUM(o.total_amount), 0) AS spent
        FROM customers c
        JOIN orders o ON o.customer_id = c.id
        GROUP BY c.id, c.full_name
        ORDER BY spent DESC
        LIMIT 5
    `).Scan(&topCustomers)

	var stats QuickStatistics
	config.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers)
	config.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	config.DB.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentUnpaid).
		Count(&stats.UnpaidOrders)
	config.DB.Model(&models.Order{}).
		Select("COALESCE(AVG(total_amount), 0)").Scan(&stats.AvgOrderValue)

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue: currentMonthRevenue,
		MonthGrowth:         monthGrowth,
		CurrentYearRevenue:  currentYearRevenue,
		RevenueByMonth:      revenueByMonth,
		TopServices:         topServices,
		TopCustomers:        topCustomers,
		QuickStats:          stats,
	})
}

// Revenue is recognized on payment, not on order creation.
func (rc *ReportController) getRevenue(start, end time.Time) float64 {
	var revenue float64
	config.DB.Model(&models.Payment{}).
		Where("paid_at >= ? AND paid_at < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)
	return revenue
}
