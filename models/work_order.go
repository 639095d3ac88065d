package models

import "time"

const (
	StatusWaiting    = "waiting"
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type WorkOrder struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ClientID      uint       `gorm:"not null;index" json:"client_id"`
	Client        Client     `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"client"`
	CarID         uint       `gorm:"not null;index" json:"car_id"`
	Car           Car        `gorm:"foreignKey:CarID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"car"`
	Complaint     string     `gorm:"type:text;not null" json:"complaint"`
	Deposit       float64    `gorm:"type:decimal(10,2);not null;default:0" json:"deposit"`
	Services      StringList `gorm:"type:text" json:"services"`
	OilChange     string     `gorm:"type:varchar(100)" json:"oil_change"`
	OilConfirmed  bool       `gorm:"default:false" json:"oil_confirmed"`
	WashConfirmed bool       `gorm:"default:false" json:"wash_confirmed"`
	Status        string     `gorm:"type:varchar(20);not null;default:'waiting'" json:"status"`
	TechnicianID  *uint      `gorm:"index" json:"technician_id,omitempty"`
	Technician    *User      `gorm:"foreignKey:TechnicianID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"technician,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
