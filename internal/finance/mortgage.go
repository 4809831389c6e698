package finance

import (
	"errors"
	"math"
	"time"

	"propman/server/internal/models"
)

var (
	// ErrNoMortgage is returned when a computation requires a mortgage the
	// property does not have.
	ErrNoMortgage = errors.New("property has no mortgage")

	// ErrOutsideTerm is returned when a requested schedule window falls
	// outside the life of the loan.
	ErrOutsideTerm = errors.New("date window outside mortgage term")
)

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Month     int       `json:"month"` // 1-based payment number
	Date      time.Time `json:"date,omitempty"`
	Payment   float64   `json:"payment"`
	Interest  float64   `json:"interest"`
	Principal float64   `json:"principal"`
	Balance   float64   `json:"balance"`
}

// Principal returns the financed amount after the down payment.
func Principal(m *models.Mortgage) float64 {
	return m.Amount - (m.DownPayment/100)*m.Amount
}

// BasePayment computes the fixed monthly annuity payment for a loan. A zero
// rate degenerates to straight-line division so there is no division by zero.
func BasePayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return principal / n
	}
	monthlyRate := annualRate / 100 / 12
	growth := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * growth / (growth - 1)
}

// MonthlyPayment returns the full monthly payment for a mortgage. When the
// loan escrows insurance or property tax, one twelfth of the property's
// annual amount is folded into the payment.
func MonthlyPayment(m *models.Mortgage, p *models.Property) float64 {
	payment := BasePayment(Principal(m), m.Rate, m.Term)
	if p != nil {
		if m.HasInsurance {
			payment += p.Insurance / 12
		}
		if m.HasTax {
			payment += p.Tax / 12
		}
	}
	return payment
}

// Schedule returns the month-by-month amortization schedule for a mortgage.
// Rows carry calendar dates when the mortgage has a start date.
func Schedule(m *models.Mortgage) []ScheduleRow {
	principal := Principal(m)
	payment := BasePayment(principal, m.Rate, m.Term)
	monthlyRate := m.Rate / 100 / 12
	n := m.Term * 12

	rows := make([]ScheduleRow, 0, n)
	balance := principal
	for i := 1; i <= n; i++ {
		interest := balance * monthlyRate
		towardPrincipal := payment - interest
		if i == n {
			// Absorb accumulated rounding into the final payment.
			towardPrincipal = balance
		}
		balance -= towardPrincipal

		row := ScheduleRow{
			Month:     i,
			Payment:   interest + towardPrincipal,
			Interest:  interest,
			Principal: towardPrincipal,
			Balance:   balance,
		}
		if !m.StartDate.IsZero() {
			row.Date = m.StartDate.AddDate(0, i-1, 0)
		}
		rows = append(rows, row)
	}
	return rows
}

// ScheduleWindow returns the schedule rows falling inside [start, end]. The
// mortgage must have a start date, and the window must overlap the life of
// the loan; otherwise ErrOutsideTerm is returned and the caller decides what
// to do.
func ScheduleWindow(m *models.Mortgage, start, end time.Time) ([]ScheduleRow, error) {
	if m.StartDate.IsZero() {
		return nil, ErrOutsideTerm
	}
	loanEnd := m.StartDate.AddDate(m.Term, 0, 0)
	if end.Before(m.StartDate) || start.After(loanEnd) {
		return nil, ErrOutsideTerm
	}

	var rows []ScheduleRow
	for _, row := range Schedule(m) {
		if row.Date.Before(start) || row.Date.After(end) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
