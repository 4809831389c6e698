package models

import "time"

// Mortgage represents a fixed-rate loan on a property.
type Mortgage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"uniqueIndex" json:"property_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Term         int       `gorm:"not null" json:"term"` // years
	Rate         float64   `gorm:"not null" json:"rate"` // annual percent
	DownPayment  float64   `gorm:"not null" json:"down_payment"` // percent of amount
	Closing      float64   `gorm:"not null" json:"closing"`
	Lender       string    `gorm:"size:30" json:"lender"`
	StartDate    time.Time `json:"start_date"`
	HasInsurance bool      `json:"has_insurance"` // payment escrows insurance
	HasPMI       bool      `json:"has_pmi"`
	HasTax       bool      `json:"has_tax"` // payment escrows property tax
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
