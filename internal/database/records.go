package database

import "propman/server/internal/models"

// Mortgages

func (d *Database) CreateMortgage(m *models.Mortgage) error {
	return d.db.Create(m).Error
}

func (d *Database) GetMortgage(id uint) (*models.Mortgage, error) {
	var m models.Mortgage
	if err := d.db.First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// GetMortgageByProperty returns the property's mortgage, or ErrNotFound when
// the property is unmortgaged.
func (d *Database) GetMortgageByProperty(propertyID uint) (*models.Mortgage, error) {
	var m models.Mortgage
	err := d.db.Where("property_id = ?", propertyID).First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (d *Database) ListMortgages() ([]models.Mortgage, error) {
	var mortgages []models.Mortgage
	if err := d.db.Find(&mortgages).Error; err != nil {
		return nil, err
	}
	return mortgages, nil
}

func (d *Database) UpdateMortgage(m *models.Mortgage) error {
	return translate(d.db.Save(m).Error)
}

func (d *Database) DeleteMortgage(id uint) error {
	return deleteByID(d, &models.Mortgage{}, id)
}

// Contacts

func (d *Database) CreateContact(c *models.Contact) error {
	return d.db.Create(c).Error
}

func (d *Database) GetContact(id uint) (*models.Contact, error) {
	var c models.Contact
	if err := d.db.Preload("Properties").First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (d *Database) GetContacts(ids []uint) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := d.db.Find(&contacts, ids).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (d *Database) ListContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := d.db.Order("last_name").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (d *Database) UpdateContact(c *models.Contact) error {
	return translate(d.db.Save(c).Error)
}

func (d *Database) DeleteContact(id uint) error {
	return deleteByID(d, &models.Contact{}, id)
}

// Expenses

func (d *Database) CreateExpense(e *models.Expense) error {
	return d.db.Create(e).Error
}

func (d *Database) GetExpense(id uint) (*models.Expense, error) {
	var e models.Expense
	if err := d.db.First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (d *Database) ListExpenses(propertyID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	query := d.db.Order("date DESC")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (d *Database) UpdateExpense(e *models.Expense) error {
	return translate(d.db.Save(e).Error)
}

func (d *Database) DeleteExpense(id uint) error {
	return deleteByID(d, &models.Expense{}, id)
}

// Incomes

func (d *Database) CreateIncome(i *models.Income) error {
	return d.db.Create(i).Error
}

func (d *Database) GetIncome(id uint) (*models.Income, error) {
	var i models.Income
	if err := d.db.First(&i, id).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (d *Database) ListIncomes(propertyID uint) ([]models.Income, error) {
	var incomes []models.Income
	query := d.db.Order("date DESC")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

func (d *Database) UpdateIncome(i *models.Income) error {
	return translate(d.db.Save(i).Error)
}

func (d *Database) DeleteIncome(id uint) error {
	return deleteByID(d, &models.Income{}, id)
}

// Inventory

func (d *Database) CreateInventory(i *models.Inventory) error {
	return d.db.Create(i).Error
}

func (d *Database) GetInventory(id uint) (*models.Inventory, error) {
	var i models.Inventory
	if err := d.db.First(&i, id).Error; err != nil {
		return nil, translate(err)
	}
	return &i, nil
}

func (d *Database) ListInventory(propertyID uint) ([]models.Inventory, error) {
	var items []models.Inventory
	query := d.db.Order("item")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (d *Database) UpdateInventory(i *models.Inventory) error {
	return translate(d.db.Save(i).Error)
}

func (d *Database) DeleteInventory(id uint) error {
	return deleteByID(d, &models.Inventory{}, id)
}

// Bookings

func (d *Database) CreateBooking(b *models.Booking) error {
	return d.db.Create(b).Error
}

func (d *Database) GetBooking(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := d.db.First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (d *Database) ListBookings(propertyID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	query := d.db.Order("start_date DESC")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *Database) UpdateBooking(b *models.Booking) error {
	return translate(d.db.Save(b).Error)
}

func (d *Database) DeleteBooking(id uint) error {
	return deleteByID(d, &models.Booking{}, id)
}

// Links

func (d *Database) CreateLink(l *models.Link) error {
	return d.db.Create(l).Error
}

func (d *Database) ListLinks(propertyID uint) ([]models.Link, error) {
	var links []models.Link
	query := d.db
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	if err := query.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (d *Database) DeleteLink(id uint) error {
	return deleteByID(d, &models.Link{}, id)
}

// Tax rates

func (d *Database) CreateTaxRate(t *models.TaxRate) error {
	return d.db.Create(t).Error
}

func (d *Database) GetTaxRateByID(id uint) (*models.TaxRate, error) {
	var rate models.TaxRate
	if err := d.db.First(&rate, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rate, nil
}

func (d *Database) ListTaxRates() ([]models.TaxRate, error) {
	var rates []models.TaxRate
	if err := d.db.Order("state, city").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (d *Database) UpdateTaxRate(t *models.TaxRate) error {
	return translate(d.db.Save(t).Error)
}

func (d *Database) DeleteTaxRate(id uint) error {
	return deleteByID(d, &models.TaxRate{}, id)
}

// GetTaxRate looks up the sales tax rate for a city and state. A missing row
// is an explicit ErrTaxRateNotFound, never a zero rate.
func (d *Database) GetTaxRate(city, state string) (float64, error) {
	var rate models.TaxRate
	err := d.db.
		Where("LOWER(city) = LOWER(?) AND LOWER(state) = LOWER(?)", city, state).
		First(&rate).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return 0, ErrTaxRateNotFound
		}
		return 0, err
	}
	return rate.SalesRate, nil
}

// deleteByID removes a row and reports ErrNotFound when nothing was deleted.
func deleteByID(d *Database, entity interface{}, id uint) error {
	result := d.db.Delete(entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
