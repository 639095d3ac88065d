package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type TechReportController struct {
	DB *gorm.DB
}

func NewTechReportController(db *gorm.DB) *TechReportController {
	return &TechReportController{DB: db}
}

// GetAllTechReports, optionally filtered by work_order_id.
func (tc *TechReportController) GetAllTechReports(c *gin.Context) {
	query := tc.DB.Preload("Technician").Order("created_at DESC")
	if workOrderID := c.Query("work_order_id"); workOrderID != "" {
		query = query.Where("work_order_id = ?", workOrderID)
	}

	var reports []models.TechReport
	if err := query.Find(&reports).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All tech reports", reports)
}

func (tc *TechReportController) GetTechReportByID(c *gin.Context) {
	var report models.TechReport
	err := tc.DB.Preload("Technician").First(&report, parseIDParam(c, "report_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("tech report not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tech report detail", report)
}

// CreateTechReport records the work performed; the author is the
// authenticated user.
func (tc *TechReportController) CreateTechReport(c *gin.Context) {
	var req struct {
		WorkOrderID     uint                `json:"work_order_id" binding:"required"`
		WorkDescription string              `json:"work_description" binding:"required"`
		TimeSpent       *float64            `json:"time_spent" binding:"omitempty,gte=0"`
		UsedParts       models.UsedPartList `json:"used_parts"`
		Services        models.Int64List    `json:"services"`
		WashType        *int                `json:"wash_type"`
		Notes           string              `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var workOrder models.WorkOrder
	if err := tc.DB.First(&workOrder, req.WorkOrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("work order not found"))
		return
	}

	var count int64
	tc.DB.Model(&models.TechReport{}).
		Where("work_order_id = ?", req.WorkOrderID).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("work order already has a tech report"))
		return
	}

	report := models.TechReport{
		WorkOrderID:     req.WorkOrderID,
		WorkDescription: req.WorkDescription,
		TimeSpent:       req.TimeSpent,
		UsedParts:       req.UsedParts,
		Services:        req.Services,
		WashType:        req.WashType,
		Notes:           req.Notes,
	}
	if userID, ok := currentUserID(c); ok {
		report.TechnicianID = &userID
	}

	if err := tc.DB.Create(&report).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Tech report created", report)
}

func (tc *TechReportController) UpdateTechReport(c *gin.Context) {
	var report models.TechReport
	if err := tc.DB.First(&report, parseIDParam(c, "report_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("tech report not found"))
		return
	}

	var req struct {
		WorkDescription string               `json:"work_description"`
		TimeSpent       *float64             `json:"time_spent" binding:"omitempty,gte=0"`
		UsedParts       *models.UsedPartList `json:"used_parts"`
		Services        *models.Int64List    `json:"services"`
		WashType        *int                 `json:"wash_type"`
		Notes           *string              `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.WorkDescription != "" {
		report.WorkDescription = req.WorkDescription
	}
	if req.TimeSpent != nil {
		report.TimeSpent = req.TimeSpent
	}
	if req.UsedParts != nil {
		report.UsedParts = *req.UsedParts
	}
	if req.Services != nil {
		report.Services = *req.Services
	}
	if req.WashType != nil {
		report.WashType = req.WashType
	}
	if req.Notes != nil {
		report.Notes = *req.Notes
	}

	if err := tc.DB.Save(&report).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Tech report updated", report)
}

func (tc *TechReportController) DeleteTechReport(c *gin.Context) {
	id := parseIDParam(c, "report_id")
	if err := tc.DB.Delete(&models.TechReport{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tech report deleted", gin.H{"report_id": id})
}
