package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/config"
	"car-service-backend/models"
	"car-service-backend/services"
	"car-service-backend/utils"
)

type BillingController struct {
	DB      *gorm.DB
	Service *services.BillingService
}

func NewBillingController(db *gorm.DB, cfg config.BillingConfig) *BillingController {
	return &BillingController{
		DB:      db,
		Service: services.NewBillingService(db, cfg),
	}
}

// GetAllBillings, optionally filtered by work_order_id.
func (bc *BillingController) GetAllBillings(c *gin.Context) {
	query := bc.DB.Order("created_at DESC")
	if workOrderID := c.Query("work_order_id"); workOrderID != "" {
		query = query.Where("work_order_id = ?", workOrderID)
	}

	var billings []models.Billing
	if err := query.Find(&billings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All billings", billings)
}

func (bc *BillingController) GetBillingByID(c *gin.Context) {
	var billing models.Billing
	if err := bc.DB.First(&billing, parseIDParam(c, "billing_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("billing not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Billing detail", billing)
}

// Generate computes the invoice for a work order from its tech report.
func (bc *BillingController) Generate(c *gin.Context) {
	var req struct {
		WorkOrderID uint `json:"work_order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	billing, skipped, err := bc.Service.Generate(req.WorkOrderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Billing %d generated for work order %d (total=%.2f)",
		billing.ID, billing.WorkOrderID, billing.Total)

	utils.RespondJSON(c, http.StatusCreated, "Billing generated", gin.H{
		"billing":            billing,
		"skipped_references": skipped,
	})
}

// UpdateBilling edits the paid flag or breakdown of an existing invoice.
func (bc *BillingController) UpdateBilling(c *gin.Context) {
	var billing models.Billing
	if err := bc.DB.First(&billing, parseIDParam(c, "billing_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("billing not found"))
		return
	}

	var req struct {
		Paid     *bool    `json:"paid"`
		Deposit  *float64 `json:"deposit" binding:"omitempty,gte=0"`
		Subtotal *float64 `json:"subtotal" binding:"omitempty,gte=0"`
		Tax      *float64 `json:"tax" binding:"omitempty,gte=0"`
		Total    *float64 `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Paid != nil {
		billing.Paid = *req.Paid
	}
	if req.Deposit != nil {
		billing.Deposit = *req.Deposit
	}
	if req.Subtotal != nil {
		billing.Subtotal = *req.Subtotal
	}
	if req.Tax != nil {
		billing.Tax = *req.Tax
	}
	if req.Total != nil {
		billing.Total = *req.Total
	}

	if err := bc.DB.Save(&billing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Billing updated", billing)
}

func (bc *BillingController) DeleteBilling(c *gin.Context) {
	id := parseIDParam(c, "billing_id")
	if err := bc.DB.Delete(&models.Billing{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Billing deleted", gin.H{"billing_id": id})
}
