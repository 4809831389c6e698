package models

import "time"

// Booking represents a vacation stay at a property.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	ContactID  uint      `gorm:"index;not null" json:"contact_id"`
	IncomeID   *uint     `json:"income_id,omitempty"`
	NightlyRate float64  `json:"nightly_rate"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	URL        string    `gorm:"size:255" json:"url"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Nights returns the number of nights stayed.
func (b Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
