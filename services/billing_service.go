package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"car-service-backend/config"
	"car-service-backend/models"
)

// SkippedReferences lists ids the billing calculation could not fully honor.
// Billing proceeds past them, but callers get to see the data-integrity gaps
// instead of a silently smaller invoice.
type SkippedReferences struct {
	Parts           []uint  `json:"parts,omitempty"`
	Services        []int64 `json:"services,omitempty"`
	StockDeductions []uint  `json:"stock_deductions,omitempty"`
}

type BillingService struct {
	DB         *gorm.DB
	Cfg        config.BillingConfig
	WorkOrders *WorkOrderService
}

func NewBillingService(db *gorm.DB, cfg config.BillingConfig) *BillingService {
	return &BillingService{
		DB:         db,
		Cfg:        cfg,
		WorkOrders: NewWorkOrderService(db),
	}
}

// Generate derives the invoice for a work order from its tech report,
// decrements stock, and completes the work order. The whole operation runs in
// one transaction holding a row lock on the work order, so a concurrent
// generate for the same order cannot double-bill or double-decrement.
func (s *BillingService) Generate(workOrderID uint) (*models.Billing, *SkippedReferences, error) {
	skipped := &SkippedReferences{}
	var billing models.Billing

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var workOrder models.WorkOrder
		if err := lockRow(tx).First(&workOrder, workOrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{"work order not found"}
			}
			return err
		}

		var existing int64
		err := tx.Model(&models.Billing{}).
			Where("work_order_id = ?", workOrder.ID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return &ConflictError{"billing already generated for this work order"}
		}

		var report models.TechReport
		err = tx.Where("work_order_id = ?", workOrder.ID).First(&report).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{"tech report required before billing"}
			}
			return err
		}

		partsCost, err := s.chargeParts(tx, report.UsedParts, skipped)
		if err != nil {
			return err
		}

		servicesCost, err := s.chargeServices(tx, report.Services, skipped)
		if err != nil {
			return err
		}

		washCost := decimal.Zero
		if report.WashType != nil {
			if price, ok := s.Cfg.WashPrices[*report.WashType]; ok {
				washCost = decimal.NewFromFloat(price)
			}
		}

		laborCost := decimal.Zero
		if report.TimeSpent != nil {
			laborCost = decimal.NewFromFloat(*report.TimeSpent).
				Mul(decimal.NewFromFloat(s.Cfg.LaborRate))
		}

		subtotal := partsCost.Add(servicesCost).Add(washCost).Add(laborCost)
		tax := subtotal.Mul(decimal.NewFromFloat(s.Cfg.TaxRate)).Round(2)
		// Not clamped: the deposit may exceed the invoice.
		total := subtotal.Add(tax).Sub(decimal.NewFromFloat(workOrder.Deposit))

		billing = models.Billing{
			WorkOrderID:   workOrder.ID,
			PartsCost:     partsCost.InexactFloat64(),
			ServicesCost:  servicesCost.InexactFloat64(),
			WashCost:      washCost.InexactFloat64(),
			LaborCost:     laborCost.InexactFloat64(),
			OilChangeCost: 0,
			Subtotal:      subtotal.InexactFloat64(),
			Tax:           tax.InexactFloat64(),
			Deposit:       workOrder.Deposit,
			Total:         total.InexactFloat64(),
			Paid:          false,
		}
		if err := tx.Create(&billing).Error; err != nil {
			return err
		}

		return s.WorkOrders.Complete(tx, &workOrder)
	})
	if err != nil {
		return nil, nil, err
	}

	return &billing, skipped, nil
}

// chargeParts accumulates sell_price x quantity for each resolvable part and
// decrements stock. An unresolvable part is skipped; insufficient stock skips
// the deduction only, the cost is still charged.
func (s *BillingService) chargeParts(tx *gorm.DB, usedParts models.UsedPartList, skipped *SkippedReferences) (decimal.Decimal, error) {
	cost := decimal.Zero
	for _, used := range usedParts {
		var part models.StockItem
		if err := tx.First(&part, used.PartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped.Parts = append(skipped.Parts, used.PartID)
				continue
			}
			return decimal.Zero, err
		}

		cost = cost.Add(decimal.NewFromFloat(part.SellPrice).
			Mul(decimal.NewFromInt(int64(used.Quantity))))

		// Conditional decrement keeps quantity from ever going negative and
		// serializes concurrent billings sharing the part on the stock row.
		res := tx.Model(&models.StockItem{}).
			Where("id = ? AND quantity >= ?", part.ID, used.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", used.Quantity))
		if res.Error != nil {
			return decimal.Zero, res.Error
		}
		if res.RowsAffected == 0 {
			skipped.StockDeductions = append(skipped.StockDeductions, part.ID)
		}
	}
	return cost, nil
}

func (s *BillingService) chargeServices(tx *gorm.DB, serviceIDs models.Int64List, skipped *SkippedReferences) (decimal.Decimal, error) {
	cost := decimal.Zero
	for _, serviceID := range serviceIDs {
		var service models.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped.Services = append(skipped.Services, serviceID)
				continue
			}
			return decimal.Zero, err
		}
		cost = cost.Add(decimal.NewFromFloat(service.Price))
	}
	return cost, nil
}

// lockRow applies SELECT ... FOR UPDATE where the dialect supports it.
// SQLite has no FOR UPDATE; its transactions serialize writers anyway.
func lockRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
