package models

import "time"

type StockItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Item        string    `gorm:"type:varchar(100);not null" json:"item"`
	Serial      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"serial"`
	BuyPrice    float64   `gorm:"type:decimal(10,2);not null" json:"buy_price"`
	SellPrice   float64   `gorm:"type:decimal(10,2);not null" json:"sell_price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	IsOil       bool      `gorm:"default:false" json:"is_oil"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
