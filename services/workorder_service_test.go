package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"car-service-backend/models"
)

func seedTechnician(t *testing.T, db *gorm.DB, username string) *models.User {
	user := models.User{
		Username:  username,
		Password:  "x",
		FirstName: "Tarek",
		LastName:  "Aziz",
		Role:      models.RoleTechnician,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestAssignTechnician(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	workOrder := seedWorkOrder(t, db, 0)
	tech := seedTechnician(t, db, "tech1")

	assigned, err := svc.Assign(workOrder.ID, tech.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusAssigned, assigned.Status)
	require.NotNil(t, assigned.TechnicianID)
	assert.Equal(t, tech.ID, *assigned.TechnicianID)
}

func TestAssignNonTechnicianFails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	workOrder := seedWorkOrder(t, db, 0)
	receptionist := models.User{
		Username: "frontdesk",
		Password: "x",
		Role:     models.RoleReceptionist,
		IsActive: true,
	}
	require.NoError(t, db.Create(&receptionist).Error)

	_, err := svc.Assign(workOrder.ID, receptionist.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// Status untouched.
	var unchanged models.WorkOrder
	require.NoError(t, db.First(&unchanged, workOrder.ID).Error)
	assert.Equal(t, models.StatusWaiting, unchanged.Status)
	assert.Nil(t, unchanged.TechnicianID)
}

func TestAssignMissingWorkOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	tech := seedTechnician(t, db, "tech1")
	_, err := svc.Assign(9999, tech.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStartWorkRequiresAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	workOrder := seedWorkOrder(t, db, 0)

	_, err := svc.StartWork(workOrder.ID)
	var invalidState *InvalidStateError
	assert.ErrorAs(t, err, &invalidState)

	var unchanged models.WorkOrder
	require.NoError(t, db.First(&unchanged, workOrder.ID).Error)
	assert.Equal(t, models.StatusWaiting, unchanged.Status)
}

func TestStartWorkDemotesOtherInProgressOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	tech := seedTechnician(t, db, "tech1")
	first := seedWorkOrder(t, db, 0)
	second := seedWorkOrder(t, db, 0)

	_, err := svc.Assign(first.ID, tech.ID)
	require.NoError(t, err)
	_, err = svc.Assign(second.ID, tech.ID)
	require.NoError(t, err)

	_, err = svc.StartWork(first.ID)
	require.NoError(t, err)

	started, err := svc.StartWork(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, started.Status)

	var demoted models.WorkOrder
	require.NoError(t, db.First(&demoted, first.ID).Error)
	assert.Equal(t, models.StatusPending, demoted.Status)
}

func TestStartWorkLeavesOtherTechniciansAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	tech1 := seedTechnician(t, db, "tech1")
	tech2 := seedTechnician(t, db, "tech2")
	first := seedWorkOrder(t, db, 0)
	second := seedWorkOrder(t, db, 0)

	_, err := svc.Assign(first.ID, tech1.ID)
	require.NoError(t, err)
	_, err = svc.Assign(second.ID, tech2.ID)
	require.NoError(t, err)

	_, err = svc.StartWork(first.ID)
	require.NoError(t, err)
	_, err = svc.StartWork(second.ID)
	require.NoError(t, err)

	var other models.WorkOrder
	require.NoError(t, db.First(&other, first.ID).Error)
	assert.Equal(t, models.StatusInProgress, other.Status)
}

func TestCompleteStampsCompletedAtOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkOrderService(db)

	workOrder := seedWorkOrder(t, db, 0)

	require.NoError(t, svc.Complete(db, workOrder))
	require.NotNil(t, workOrder.CompletedAt)
	firstStamp := *workOrder.CompletedAt

	require.NoError(t, svc.Complete(db, workOrder))
	assert.Equal(t, firstStamp, *workOrder.CompletedAt)
}
