package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"car-service-backend/models"
	"car-service-backend/utils"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db}
}

func (sc *StockController) GetAllStockItems(c *gin.Context) {
	var items []models.StockItem
	if err := sc.DB.Order("item ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All stock items", items)
}

// GetOilItems lists the stock items flagged as oils.
func (sc *StockController) GetOilItems(c *gin.Context) {
	var oils []models.StockItem
	if err := sc.DB.Where("is_oil = ?", true).Order("item ASC").Find(&oils).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Oil items", oils)
}

func (sc *StockController) GetStockItemByID(c *gin.Context) {
	var item models.StockItem
	if err := sc.DB.First(&item, parseIDParam(c, "item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("stock item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock item detail", item)
}

func (sc *StockController) CreateStockItem(c *gin.Context) {
	var req struct {
		Item        string  `json:"item" binding:"required"`
		Serial      string  `json:"serial" binding:"required"`
		BuyPrice    float64 `json:"buy_price" binding:"gte=0"`
		SellPrice   float64 `json:"sell_price" binding:"gte=0"`
		Quantity    int     `json:"quantity" binding:"gte=0"`
		IsOil       bool    `json:"is_oil"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	sc.DB.Model(&models.StockItem{}).Where("serial = ?", req.Serial).Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("serial already exists"))
		return
	}

	item := models.StockItem{
		Item:        req.Item,
		Serial:      req.Serial,
		BuyPrice:    req.BuyPrice,
		SellPrice:   req.SellPrice,
		Quantity:    req.Quantity,
		IsOil:       req.IsOil,
		Description: req.Description,
	}
	if err := sc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Stock item created", item)
}

func (sc *StockController) UpdateStockItem(c *gin.Context) {
	var item models.StockItem
	if err := sc.DB.First(&item, parseIDParam(c, "item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("stock item not found"))
		return
	}

	var req struct {
		Item        string   `json:"item"`
		Serial      string   `json:"serial"`
		BuyPrice    *float64 `json:"buy_price" binding:"omitempty,gte=0"`
		SellPrice   *float64 `json:"sell_price" binding:"omitempty,gte=0"`
		Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
		IsOil       *bool    `json:"is_oil"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Serial != "" && req.Serial != item.Serial {
		var count int64
		sc.DB.Model(&models.StockItem{}).
			Where("serial = ? AND id <> ?", req.Serial, item.ID).
			Count(&count)
		if count > 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("serial already exists"))
			return
		}
		item.Serial = req.Serial
	}
	if req.Item != "" {
		item.Item = req.Item
	}
	if req.BuyPrice != nil {
		item.BuyPrice = *req.BuyPrice
	}
	if req.SellPrice != nil {
		item.SellPrice = *req.SellPrice
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.IsOil != nil {
		item.IsOil = *req.IsOil
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := sc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Stock item updated", item)
}

// UpdateQuantity is the direct inventory adjustment endpoint.
func (sc *StockController) UpdateQuantity(c *gin.Context) {
	var item models.StockItem
	if err := sc.DB.First(&item, parseIDParam(c, "item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("stock item not found"))
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item.Quantity = *req.Quantity
	if err := sc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Stock quantity updated", item)
}

func (sc *StockController) DeleteStockItem(c *gin.Context) {
	id := parseIDParam(c, "item_id")
	if err := sc.DB.Delete(&models.StockItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stock item deleted", gin.H{"item_id": id})
}
