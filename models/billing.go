package models

import "time"

// Billing is the invoice derived from a work order's tech report. At most one
// per work order; total = subtotal + tax - deposit and may go negative when
// the deposit exceeds the invoice.
type Billing struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WorkOrderID   uint      `gorm:"not null;uniqueIndex" json:"work_order_id"`
	WorkOrder     WorkOrder `gorm:"foreignKey:WorkOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PartsCost     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"parts_cost"`
	ServicesCost  float64   `gorm:"type:decimal(10,2);not null;default:0" json:"services_cost"`
	WashCost      float64   `gorm:"type:decimal(10,2);not null;default:0" json:"wash_cost"`
	LaborCost     float64   `gorm:"type:decimal(10,2);not null;default:0" json:"labor_cost"`
	OilChangeCost float64   `gorm:"type:decimal(10,2);not null;default:0" json:"oil_change_cost"`
	Subtotal      float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           float64   `gorm:"type:decimal(10,2);not null" json:"tax"`
	Deposit       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"deposit"`
	Total         float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	Paid          bool      `gorm:"default:false" json:"paid"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
