package models

import "time"

// Quality describes the condition of an inventory item.
type Quality string

const (
	QualityNew     Quality = "New"
	QualityUsed    Quality = "Used"
	QualityWorn    Quality = "Worn"
	QualityDamaged Quality = "Damaged"
)

// Valid reports whether q is one of the known quality values.
func (q Quality) Valid() bool {
	switch q {
	case QualityNew, QualityUsed, QualityWorn, QualityDamaged:
		return true
	}
	return false
}

// Inventory is an item kept at a property.
type Inventory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `gorm:"index;not null" json:"property_id"`
	Item         string    `gorm:"size:30;not null" json:"item"`
	Description  string    `json:"description"`
	Cost         float64   `gorm:"not null;default:0" json:"cost"`
	HasTax       bool      `json:"has_tax"`
	SalesTax     float64   `gorm:"not null;default:0" json:"sales_tax"` // cached, see reports.RefreshSalesTax
	PurchaseDate time.Time `json:"purchase_date"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	Quality      Quality   `gorm:"size:10;not null;default:'New'" json:"quality"`
	Category     string    `gorm:"size:30" json:"category"`
	Location     string    `gorm:"size:30" json:"location"`
	Brand        string    `gorm:"size:30" json:"brand"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TotalCost returns the cost for the full quantity of the item.
func (i Inventory) TotalCost() float64 {
	return i.Cost * float64(i.Quantity)
}
