package finance

import "propman/server/internal/models"

// Residential property depreciates over 27.5 years = 330 months.
const depreciationMonths = 330

// Depreciation computes the straight-line depreciation amount for a property
// in a given calendar year. The schedule starts at the mortgage start date
// and runs 27 years and 6 months: the first year gets 13 - start month
// months, the final year gets the end month's count, and every year between
// gets 12. Years outside the schedule depreciate nothing.
func Depreciation(p *models.Property, m *models.Mortgage, year int) (float64, error) {
	if m == nil || m.StartDate.IsZero() {
		return 0, ErrNoMortgage
	}

	start := m.StartDate
	end := start.AddDate(27, 6, 0)
	if year < start.Year() || year > end.Year() {
		return 0, nil
	}

	base := p.Cost + m.Closing - p.LandValue

	var months int
	switch year {
	case start.Year():
		months = 13 - int(start.Month())
	case end.Year():
		months = int(end.Month())
	default:
		months = 12
	}
	return base * float64(months) / depreciationMonths, nil
}
