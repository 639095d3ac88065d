package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/services"
	"car-service-backend/utils"
)

type WorkOrderController struct {
	DB      *gorm.DB
	Service *services.WorkOrderService
}

func NewWorkOrderController(db *gorm.DB) *WorkOrderController {
	return &WorkOrderController{
		DB:      db,
		Service: services.NewWorkOrderService(db),
	}
}

func (wc *WorkOrderController) GetAllWorkOrders(c *gin.Context) {
	query := wc.DB.Preload("Client").Preload("Car").Preload("Technician").
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var workOrders []models.WorkOrder
	if err := query.Find(&workOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All work orders", workOrders)
}

func (wc *WorkOrderController) GetWorkOrderByID(c *gin.Context) {
	var workOrder models.WorkOrder
	err := wc.DB.Preload("Client").Preload("Car").Preload("Technician").
		First(&workOrder, parseIDParam(c, "order_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("work order not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Work order detail", workOrder)
}

func (wc *WorkOrderController) CreateWorkOrder(c *gin.Context) {
	var req struct {
		ClientID      uint              `json:"client_id" binding:"required"`
		CarID         uint              `json:"car_id" binding:"required"`
		Complaint     string            `json:"complaint" binding:"required"`
		Deposit       float64           `json:"deposit" binding:"gte=0"`
		Services      models.StringList `json:"services"`
		OilChange     string            `json:"oil_change"`
		OilConfirmed  bool              `json:"oil_confirmed"`
		WashConfirmed bool              `json:"wash_confirmed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := wc.DB.First(&client, req.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("client not found"))
		return
	}

	var car models.Car
	if err := wc.DB.First(&car, req.CarID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("car not found"))
		return
	}
	if car.ClientID != req.ClientID {
		utils.RespondError(c, http.StatusBadRequest, errors.New("car does not belong to this client"))
		return
	}

	workOrder := models.WorkOrder{
		ClientID:      req.ClientID,
		CarID:         req.CarID,
		Complaint:     req.Complaint,
		Deposit:       req.Deposit,
		Services:      req.Services,
		OilChange:     req.OilChange,
		OilConfirmed:  req.OilConfirmed,
		WashConfirmed: req.WashConfirmed,
		Status:        models.StatusWaiting,
	}
	if err := wc.DB.Create(&workOrder).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Work order created", workOrder)
}

func (wc *WorkOrderController) UpdateWorkOrder(c *gin.Context) {
	var workOrder models.WorkOrder
	if err := wc.DB.First(&workOrder, parseIDParam(c, "order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("work order not found"))
		return
	}

	var req struct {
		Complaint     string             `json:"complaint"`
		Deposit       *float64           `json:"deposit" binding:"omitempty,gte=0"`
		Services      *models.StringList `json:"services"`
		OilChange     *string            `json:"oil_change"`
		OilConfirmed  *bool              `json:"oil_confirmed"`
		WashConfirmed *bool              `json:"wash_confirmed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Complaint != "" {
		workOrder.Complaint = req.Complaint
	}
	if req.Deposit != nil {
		workOrder.Deposit = *req.Deposit
	}
	if req.Services != nil {
		workOrder.Services = *req.Services
	}
	if req.OilChange != nil {
		workOrder.OilChange = *req.OilChange
	}
	if req.OilConfirmed != nil {
		workOrder.OilConfirmed = *req.OilConfirmed
	}
	if req.WashConfirmed != nil {
		workOrder.WashConfirmed = *req.WashConfirmed
	}

	if err := wc.DB.Save(&workOrder).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Work order updated", workOrder)
}

func (wc *WorkOrderController) DeleteWorkOrder(c *gin.Context) {
	id := parseIDParam(c, "order_id")
	if err := wc.DB.Delete(&models.WorkOrder{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Work order deleted", gin.H{"order_id": id})
}

// Assign hands the work order to a technician.
func (wc *WorkOrderController) Assign(c *gin.Context) {
	var req struct {
		TechnicianID uint `json:"technician_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	workOrder, err := wc.Service.Assign(parseIDParam(c, "order_id"), req.TechnicianID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Work order assigned", workOrder)
}

// StartWork moves the order to in_progress.
func (wc *WorkOrderController) StartWork(c *gin.Context) {
	workOrder, err := wc.Service.StartWork(parseIDParam(c, "order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Work started", workOrder)
}
