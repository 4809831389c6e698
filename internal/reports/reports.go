package reports

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"propman/server/internal/database"
	"propman/server/internal/finance"
	"propman/server/internal/models"
)

// Service derives financial summaries from the record store.
type Service struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewService(db *database.Database, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Service{db: db, logger: logger}
}

// FinancialReport summarizes a property's finances.
type FinancialReport struct {
	PropertyID     uint            `json:"property_id"`
	Address        string          `json:"address"`
	MonthlyRevenue float64         `json:"monthly_revenue"`
	MonthlyCost    float64         `json:"monthly_cost"`
	TotalExpenses  float64         `json:"total_expenses"`
	TotalIncome    float64         `json:"total_income"`
	TotalInventory float64         `json:"total_inventory"`
	TaxDeductions  map[int]float64 `json:"tax_deductions"`
}

// FinancialReport builds the full financial summary for a property.
func (s *Service) FinancialReport(propertyID uint) (*FinancialReport, error) {
	property, err := s.db.GetProperty(propertyID)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := s.db.TotalExpenses(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	totalIncome, err := s.db.TotalIncome(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to total income: %w", err)
	}
	totalInventory, err := s.db.TotalInventory(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to total inventory: %w", err)
	}
	deductions, err := s.taxDeductions(property)
	if err != nil {
		return nil, err
	}

	return &FinancialReport{
		PropertyID:     property.ID,
		Address:        property.Address,
		MonthlyRevenue: finance.MonthlyRevenue(property),
		MonthlyCost:    finance.MonthlyCost(property, property.Mortgage),
		TotalExpenses:  totalExpenses,
		TotalIncome:    totalIncome,
		TotalInventory: totalInventory,
		TaxDeductions:  deductions,
	}, nil
}

// TaxDeductions maps each calendar year to the property's total deductible
// figure: deduction-eligible expenses plus that year's depreciation.
func (s *Service) TaxDeductions(propertyID uint) (map[int]float64, error) {
	property, err := s.db.GetProperty(propertyID)
	if err != nil {
		return nil, err
	}
	return s.taxDeductions(property)
}

func (s *Service) taxDeductions(property *models.Property) (map[int]float64, error) {
	years, err := s.db.DeductibleExpenseTotalsByYear(property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate deductible expenses: %w", err)
	}

	deductions := make(map[int]float64, len(years))
	for _, row := range years {
		total := row.Total
		if property.Mortgage != nil && !property.Mortgage.StartDate.IsZero() {
			depreciation, err := finance.Depreciation(property, property.Mortgage, row.Year)
			if err != nil {
				return nil, err
			}
			total += depreciation
		}
		deductions[row.Year] = total
	}
	return deductions, nil
}

// AmortizationSchedule returns the payment schedule for a property's
// mortgage, optionally restricted to a date window. A property without a
// mortgage fails with finance.ErrNoMortgage.
func (s *Service) AmortizationSchedule(propertyID uint, start, end *time.Time) ([]finance.ScheduleRow, error) {
	mortgage, err := s.db.GetMortgageByProperty(propertyID)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, finance.ErrNoMortgage
		}
		return nil, err
	}

	if start != nil && end != nil {
		return finance.ScheduleWindow(mortgage, *start, *end)
	}
	return finance.Schedule(mortgage), nil
}

// RefreshSalesTax recomputes the cached sales tax for every taxable
// inventory item of a property and persists the rows whose value changed.
// It returns how many rows were updated. A missing tax rate for the
// property's city and state propagates as database.ErrTaxRateNotFound.
func (s *Service) RefreshSalesTax(propertyID uint) (int, error) {
	property, err := s.db.GetProperty(propertyID)
	if err != nil {
		return 0, err
	}

	rate, err := s.db.GetTaxRate(property.City, property.State)
	if err != nil {
		return 0, err
	}

	var updated int
	for _, item := range property.Inventory {
		if !item.HasTax {
			continue
		}
		tax := finance.SalesTax(item.Cost, rate)
		if tax == item.SalesTax {
			continue
		}
		if err := s.db.UpdateInventorySalesTax(item.ID, tax); err != nil {
			return updated, fmt.Errorf("failed to update sales tax for item %d: %w", item.ID, err)
		}
		updated++
	}

	s.logger.WithFields(logrus.Fields{
		"property_id": propertyID,
		"updated":     updated,
	}).Debug("Refreshed inventory sales tax")
	return updated, nil
}

// RefreshAllSalesTax refreshes the sales tax cache for every property.
// Properties without a configured rate are skipped with a warning so one
// missing rate does not stall the sweep.
func (s *Service) RefreshAllSalesTax() (int, error) {
	properties, err := s.db.ListProperties("")
	if err != nil {
		return 0, err
	}

	var updated int
	for _, property := range properties {
		n, err := s.RefreshSalesTax(property.ID)
		if err != nil {
			if err == database.ErrTaxRateNotFound {
				s.logger.WithFields(logrus.Fields{
					"property_id": property.ID,
					"city":        property.City,
					"state":       property.State,
				}).Warn("No sales tax rate configured, skipping property")
				continue
			}
			return updated, err
		}
		updated += n
	}
	return updated, nil
}
