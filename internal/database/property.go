package database

import "propman/server/internal/models"

func (d *Database) CreateProperty(p *models.Property) error {
	return d.db.Create(p).Error
}

// GetProperty loads a property with every associated record: mortgage,
// expenses, incomes, inventory, bookings, links, and contacts.
func (d *Database) GetProperty(id uint) (*models.Property, error) {
	var p models.Property
	err := d.db.
		Preload("Mortgage").
		Preload("Expenses").
		Preload("Incomes").
		Preload("Inventory").
		Preload("Bookings").
		Preload("Links").
		Preload("Contacts").
		First(&p, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// ListProperties returns bare property rows, optionally filtered by city.
func (d *Database) ListProperties(city string) ([]models.Property, error) {
	var properties []models.Property
	query := d.db.Order("address")
	if city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (d *Database) UpdateProperty(p *models.Property) error {
	return translate(d.db.Save(p).Error)
}

func (d *Database) DeleteProperty(id uint) error {
	result := d.db.Delete(&models.Property{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachContact adds a contact to a property's contact list.
func (d *Database) AttachContact(propertyID, contactID uint) error {
	property, err := d.GetProperty(propertyID)
	if err != nil {
		return err
	}
	contact, err := d.GetContact(contactID)
	if err != nil {
		return err
	}
	return d.db.Model(property).Association("Contacts").Append(contact)
}

// DetachContact removes a contact from a property's contact list.
func (d *Database) DetachContact(propertyID, contactID uint) error {
	property, err := d.GetProperty(propertyID)
	if err != nil {
		return err
	}
	contact, err := d.GetContact(contactID)
	if err != nil {
		return err
	}
	return d.db.Model(property).Association("Contacts").Delete(contact)
}
