package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"car-service-backend/models"
)

// WorkOrderService enforces the work-order status transitions. Completion is
// not exposed over HTTP directly; the billing flow drives it.
type WorkOrderService struct {
	DB *gorm.DB
}

func NewWorkOrderService(db *gorm.DB) *WorkOrderService {
	return &WorkOrderService{DB: db}
}

// Assign sets the technician on a work order and moves it to assigned.
// Repeated calls simply reassign.
func (s *WorkOrderService) Assign(workOrderID, technicianID uint) (*models.WorkOrder, error) {
	var workOrder models.WorkOrder
	if err := s.DB.First(&workOrder, workOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"work order not found"}
		}
		return nil, err
	}

	var technician models.User
	err := s.DB.Where("id = ? AND role = ?", technicianID, models.RoleTechnician).
		First(&technician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"technician not found"}
		}
		return nil, err
	}

	workOrder.TechnicianID = &technician.ID
	workOrder.Status = models.StatusAssigned
	if err := s.DB.Save(&workOrder).Error; err != nil {
		return nil, err
	}

	workOrder.Technician = &technician
	return &workOrder, nil
}

// StartWork moves an assigned work order to in_progress. A technician works
// one job at a time, so any other in_progress order of the same technician is
// demoted to pending first.
func (s *WorkOrderService) StartWork(workOrderID uint) (*models.WorkOrder, error) {
	var workOrder models.WorkOrder
	if err := s.DB.First(&workOrder, workOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"work order not found"}
		}
		return nil, err
	}

	if workOrder.TechnicianID == nil {
		return nil, &InvalidStateError{"work order must be assigned to a technician first"}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.WorkOrder{}).
			Where("technician_id = ? AND status = ? AND id <> ?",
				*workOrder.TechnicianID, models.StatusInProgress, workOrder.ID).
			Update("status", models.StatusPending).Error
		if err != nil {
			return err
		}
		return tx.Model(&workOrder).Update("status", models.StatusInProgress).Error
	})
	if err != nil {
		return nil, err
	}

	workOrder.Status = models.StatusInProgress
	return &workOrder, nil
}

// Complete transitions a work order into completed within the caller's
// transaction. completed_at is stamped only on the first transition.
func (s *WorkOrderService) Complete(tx *gorm.DB, workOrder *models.WorkOrder) error {
	if workOrder.Status == models.StatusCompleted {
		return nil
	}

	workOrder.Status = models.StatusCompleted
	if workOrder.CompletedAt == nil {
		now := time.Now()
		workOrder.CompletedAt = &now
	}
	return tx.Save(workOrder).Error
}
