package models

import "time"

// Property represents a piece of real estate being managed.
type Property struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Address        string  `gorm:"uniqueIndex;not null" json:"address"`
	City           string  `gorm:"size:30;not null" json:"city"`
	State          string  `gorm:"size:20;not null" json:"state"`
	Zipcode        string  `gorm:"size:10;not null" json:"zipcode"`
	Cost           float64 `json:"cost"`
	LandValue      float64 `gorm:"default:0" json:"land_value"`
	Tax            float64 `json:"tax"`             // annual property tax
	AssociationFee float64 `json:"association_fee"` // annual HOA fee
	ManagementFee  float64 `json:"management_fee"`  // percent of rental income
	Insurance      float64 `json:"insurance"`       // annual premium
	Description    string  `json:"description"`
	NightlyRate    float64 `json:"nightly_rate"`
	Occupancy      int     `json:"occupancy"` // percent of nights occupied
	Rent           float64 `json:"rent"`

	Mortgage  *Mortgage   `gorm:"foreignKey:PropertyID" json:"mortgage,omitempty"`
	Expenses  []Expense   `gorm:"foreignKey:PropertyID" json:"expenses,omitempty"`
	Incomes   []Income    `gorm:"foreignKey:PropertyID" json:"incomes,omitempty"`
	Inventory []Inventory `gorm:"foreignKey:PropertyID" json:"inventory,omitempty"`
	Bookings  []Booking   `gorm:"foreignKey:PropertyID" json:"bookings,omitempty"`
	Links     []Link      `gorm:"foreignKey:PropertyID" json:"links,omitempty"`
	Contacts  []Contact   `gorm:"many2many:property_contacts" json:"contacts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Link is a URL associated with a property.
type Link struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"index;not null" json:"property_id"`
	URL        string `gorm:"not null" json:"url"`
	Text       string `gorm:"size:255" json:"text"`
}
