package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

// ReportController serves the read-only aggregate queries. No write side
// effects; empty ranges yield empty arrays.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetKPIs returns the dashboard snapshot for the server-local date.
func (rc *ReportController) GetKPIs(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var kpis struct {
		CarsWashedToday       int64 `json:"cars_washed_today"`
		CarsOilChangedToday   int64 `json:"cars_oil_changed_today"`
		CarsMaintainedToday   int64 `json:"cars_maintained_today"`
		CarsCurrentlyInCenter int64 `json:"cars_currently_in_center"`
		CarsPending           int64 `json:"cars_pending"`
		CarsCompleted         int64 `json:"cars_completed"`
	}

	rc.DB.Model(&models.WorkOrder{}).
		Where("DATE(created_at) = ? AND wash_confirmed = ?", today, true).
		Count(&kpis.CarsWashedToday)
	rc.DB.Model(&models.WorkOrder{}).
		Where("DATE(created_at) = ? AND oil_confirmed = ?", today, true).
		Count(&kpis.CarsOilChangedToday)
	rc.DB.Model(&models.WorkOrder{}).
		Where("DATE(created_at) = ? AND status = ?", today, models.StatusCompleted).
		Count(&kpis.CarsMaintainedToday)
	rc.DB.Model(&models.WorkOrder{}).
		Where("status IN ?", []string{models.StatusAssigned, models.StatusPending, models.StatusInProgress}).
		Count(&kpis.CarsCurrentlyInCenter)
	rc.DB.Model(&models.WorkOrder{}).
		Where("status = ?", models.StatusWaiting).
		Count(&kpis.CarsPending)
	rc.DB.Model(&models.WorkOrder{}).
		Where("status = ?", models.StatusCompleted).
		Count(&kpis.CarsCompleted)

	utils.RespondJSON(c, http.StatusOK, "KPIs", kpis)
}

type dailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GetDailyWorkOrders counts work orders per creation date, with optional
// inclusive start_date / end_date filters (YYYY-MM-DD).
func (rc *ReportController) GetDailyWorkOrders(c *gin.Context) {
	query := rc.DB.Model(&models.WorkOrder{})

	if startDate := c.Query("start_date"); startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid start_date format, use YYYY-MM-DD"))
			return
		}
		query = query.Where("DATE(created_at) >= ?", startDate)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid end_date format, use YYYY-MM-DD"))
			return
		}
		query = query.Where("DATE(created_at) <= ?", endDate)
	}

	counts := make([]dailyCount, 0)
	err := query.
		Select("DATE(created_at) AS date, COUNT(id) AS count").
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&counts).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Daily work orders", counts)
}

type monthlyProfit struct {
	Month  string  `json:"month"`
	Profit float64 `json:"profit"`
}

// GetMonthlyProfit sums billing totals per creation month, ascending.
func (rc *ReportController) GetMonthlyProfit(c *gin.Context) {
	profits := make([]monthlyProfit, 0)
	monthExpr := rc.monthExpr()

	err := rc.DB.Model(&models.Billing{}).
		Select(monthExpr + " AS month, COALESCE(SUM(total), 0) AS profit").
		Group(monthExpr).
		Order("month ASC").
		Scan(&profits).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Monthly profit", profits)
}

type oilCount struct {
	Oil   string `json:"oil"`
	Count int64  `json:"count"`
}

// GetPopularOils counts confirmed oil changes by oil type, most used first.
func (rc *ReportController) GetPopularOils(c *gin.Context) {
	counts := make([]oilCount, 0)
	err := rc.DB.Model(&models.WorkOrder{}).
		Select("oil_change AS oil, COUNT(id) AS count").
		Where("oil_change IS NOT NULL AND oil_change <> '' AND oil_confirmed = ?", true).
		Group("oil_change").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Popular oils", counts)
}

// monthExpr picks the YYYY-MM formatting function for the active dialect.
func (rc *ReportController) monthExpr() string {
	if rc.DB.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', created_at)"
	}
	return "DATE_FORMAT(created_at, '%Y-%m')"
}
