package models

import "time"

// Expense tracks money spent on a property.
type Expense struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"index;not null" json:"property_id"`
	ContactID    *uint     `json:"contact_id,omitempty"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Tax          float64   `gorm:"not null;default:0" json:"tax"`
	Payee        string    `gorm:"size:30;not null" json:"payee"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	TaxDeduction bool      `json:"tax_deduction"`
	Receipt      string    `gorm:"size:255" json:"receipt"` // stored file name
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Income tracks money received for a property.
type Income struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Payer      string    `gorm:"size:30;not null" json:"payer"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaxRate holds the sales tax rate for a city and state.
type TaxRate struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	City      string  `gorm:"size:30;uniqueIndex:idx_tax_rate_location" json:"city"`
	State     string  `gorm:"size:30;uniqueIndex:idx_tax_rate_location" json:"state"`
	SalesRate float64 `gorm:"default:0" json:"sales_rate"`
}
