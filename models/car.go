package models

import "time"

// A plate may recur across clients (car sold to a new owner), but one client
// cannot register the same plate twice.
type Car struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;uniqueIndex:idx_client_plate" json:"client_id"`
	Client    Client    `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"client"`
	Plate     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_client_plate" json:"plate"`
	Brand     string    `gorm:"type:varchar(50);not null" json:"brand"`
	Model     string    `gorm:"type:varchar(50);not null" json:"model"`
	Counter   int       `gorm:"not null" json:"counter"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
