package models

import "time"

// Contact is a person associated with properties, mortgages, expenses, or income.
type Contact struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FirstName  string `gorm:"size:20;not null;uniqueIndex:idx_contact_name" json:"first_name"`
	LastName   string `gorm:"size:20;not null;uniqueIndex:idx_contact_name" json:"last_name"`
	Company    string `gorm:"size:60" json:"company"`
	Phone      string `gorm:"size:20" json:"phone"`
	Email      string `gorm:"size:120" json:"email"`
	Role       string `gorm:"size:30" json:"role"`
	MortgageID *uint  `json:"mortgage_id,omitempty"`
	IncomeID   *uint  `json:"income_id,omitempty"`

	Expenses   []Expense  `gorm:"foreignKey:ContactID" json:"expenses,omitempty"`
	Properties []Property `gorm:"many2many:property_contacts" json:"properties,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the contact's first and last name joined for display.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
