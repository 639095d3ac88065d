package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"car-service-backend/config"
	"car-service-backend/models"
)

func setupWorkOrderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	workOrderCtrl := NewWorkOrderController(db)
	billingCtrl := NewBillingController(db, config.BillingConfig{
		TaxRate:    0.14,
		LaborRate:  50,
		WashPrices: map[int]float64{1: 30, 2: 25, 3: 50, 4: 75},
	})
	r.POST("/work-orders", workOrderCtrl.CreateWorkOrder)
	r.POST("/work-orders/:order_id/assign", workOrderCtrl.Assign)
	r.POST("/work-orders/:order_id/start", workOrderCtrl.StartWork)
	r.POST("/billing/generate", billingCtrl.Generate)
	return r
}

func TestCreateWorkOrderValidatesOwnership(t *testing.T) {
	db := setupTestDB(t)
	r := setupWorkOrderRouter(db)

	client, _ := seedClientAndCar(t, db)

	other := models.Client{FirstName: "Sara", LastName: "Adel", Phone: "0111111111"}
	require.NoError(t, db.Create(&other).Error)
	otherCar := models.Car{ClientID: other.ID, Plate: "OTHER-1", Brand: "Kia", Model: "Rio", Counter: 1000}
	require.NoError(t, db.Create(&otherCar).Error)

	w, resp := postJSON(t, r, "/work-orders", map[string]interface{}{
		"client_id": client.ID,
		"car_id":    otherCar.ID,
		"complaint": "noise",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "belong")
}

func TestAssignEndpointRejectsNonTechnician(t *testing.T) {
	db := setupTestDB(t)
	r := setupWorkOrderRouter(db)

	client, car := seedClientAndCar(t, db)
	order := models.WorkOrder{ClientID: client.ID, CarID: car.ID, Complaint: "c", Status: models.StatusWaiting}
	require.NoError(t, db.Create(&order).Error)

	admin := seedUser(t, db, "boss", "password123", models.RoleAdmin)

	w, _ := postJSON(t, r, "/work-orders/1/assign", map[string]interface{}{
		"technician_id": admin.ID,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartWorkEndpointInvalidState(t *testing.T) {
	db := setupTestDB(t)
	r := setupWorkOrderRouter(db)

	client, car := seedClientAndCar(t, db)
	order := models.WorkOrder{ClientID: client.ID, CarID: car.ID, Complaint: "c", Status: models.StatusWaiting}
	require.NoError(t, db.Create(&order).Error)

	w, _ := postJSON(t, r, "/work-orders/1/start", map[string]interface{}{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateBillingEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupWorkOrderRouter(db)

	client, car := seedClientAndCar(t, db)
	order := models.WorkOrder{ClientID: client.ID, CarID: car.ID, Complaint: "c", Deposit: 20, Status: models.StatusInProgress}
	require.NoError(t, db.Create(&order).Error)

	part := models.StockItem{Item: "Brake pads", Serial: "BP-001", BuyPrice: 25, SellPrice: 40, Quantity: 10}
	require.NoError(t, db.Create(&part).Error)
	service := models.Service{Name: "Wheel alignment", Price: 15, IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	timeSpent := 1.5
	washType := 2
	report := models.TechReport{
		WorkOrderID:     order.ID,
		WorkDescription: "full job",
		TimeSpent:       &timeSpent,
		UsedParts:       models.UsedPartList{{PartID: part.ID, Quantity: 2}},
		Services:        models.Int64List{int64(service.ID)},
		WashType:        &washType,
	}
	require.NoError(t, db.Create(&report).Error)

	w, resp := postJSON(t, r, "/billing/generate", map[string]interface{}{
		"work_order_id": order.ID,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp.Data.(map[string]interface{})
	billing := data["billing"].(map[string]interface{})
	assert.InDelta(t, 202.3, billing["total"].(float64), 1e-9)

	// Second generation is rejected.
	w, _ = postJSON(t, r, "/billing/generate", map[string]interface{}{
		"work_order_id": order.ID,
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGenerateBillingEndpointMissingReport(t *testing.T) {
	db := setupTestDB(t)
	r := setupWorkOrderRouter(db)

	client, car := seedClientAndCar(t, db)
	order := models.WorkOrder{ClientID: client.ID, CarID: car.ID, Complaint: "c", Status: models.StatusInProgress}
	require.NoError(t, db.Create(&order).Error)

	w, resp := postJSON(t, r, "/billing/generate", map[string]interface{}{
		"work_order_id": order.ID,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp.Message, "tech report")
}
