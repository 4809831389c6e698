package database

import (
	"gorm.io/gorm"

	"propman/server/internal/models"
)

// YearTotal is a per-calendar-year dollar total.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// TotalExpenses sums amount plus tax over a property's expenses. No rows
// means 0.0, not an error.
func (d *Database) TotalExpenses(propertyID uint) (float64, error) {
	var total float64
	err := d.db.Model(&models.Expense{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(SUM(amount + tax), 0)").
		Scan(&total).Error
	return total, err
}

// TotalIncome sums a property's income rows.
func (d *Database) TotalIncome(propertyID uint) (float64, error) {
	var total float64
	err := d.db.Model(&models.Income{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// TotalInventory sums cost times quantity over a property's inventory.
func (d *Database) TotalInventory(propertyID uint) (float64, error) {
	var total float64
	err := d.db.Model(&models.Inventory{}).
		Where("property_id = ?", propertyID).
		Select("COALESCE(SUM(cost * quantity), 0)").
		Scan(&total).Error
	return total, err
}

// DeductibleExpenseTotalsByYear groups a property's deduction-eligible
// expenses by the calendar year of their date and sums amount plus tax.
func (d *Database) DeductibleExpenseTotalsByYear(propertyID uint) ([]YearTotal, error) {
	var rows []YearTotal
	err := d.db.Model(&models.Expense{}).
		Select("CAST(strftime('%Y', date) AS INTEGER) AS year, SUM(amount + tax) AS total").
		Where("property_id = ? AND tax_deduction = ?", propertyID, true).
		Group("strftime('%Y', date)").
		Order("year").
		Scan(&rows).Error
	return rows, err
}

// UpdateInventorySalesTax persists a recomputed sales tax cache value. The
// write runs in a transaction; concurrent refreshes settle last-write-wins.
func (d *Database) UpdateInventorySalesTax(id uint, tax float64) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Inventory{}).
			Where("id = ?", id).
			Update("sales_tax", tax)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
