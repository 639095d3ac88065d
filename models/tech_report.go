package models

import "time"

// TechReport documents the work a technician performed for one work order.
// Exactly one report per work order.
type TechReport struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	WorkOrderID     uint         `gorm:"not null;uniqueIndex" json:"work_order_id"`
	WorkOrder       WorkOrder    `gorm:"foreignKey:WorkOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TechnicianID    *uint        `gorm:"index" json:"technician_id,omitempty"`
	Technician      *User        `gorm:"foreignKey:TechnicianID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"technician,omitempty"`
	WorkDescription string       `gorm:"type:text;not null" json:"work_description"`
	TimeSpent       *float64     `json:"time_spent,omitempty"`
	UsedParts       UsedPartList `gorm:"type:text" json:"used_parts"`
	Services        Int64List    `gorm:"type:text" json:"services"`
	WashType        *int         `json:"wash_type,omitempty"`
	Notes           string       `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}
