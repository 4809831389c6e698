package finance

import "propman/server/internal/models"

// MonthlyRevenue estimates the revenue a property produces per month from
// short-term rentals. Missing nightly rate or occupancy count as zero.
func MonthlyRevenue(p *models.Property) float64 {
	occupiedNights := float64(p.Occupancy) / 100 * 365
	return p.NightlyRate * occupiedNights / 12
}

// MonthlyCost totals what a property costs per month: the mortgage payment,
// insurance and property tax when they are not escrowed into the payment,
// the management fee cut of revenue, and the HOA fee.
func MonthlyCost(p *models.Property, m *models.Mortgage) float64 {
	var total float64
	if m != nil {
		total += MonthlyPayment(m, p)
		if !m.HasInsurance {
			total += p.Insurance / 12
		}
		if !m.HasTax {
			total += p.Tax / 12
		}
	}
	if revenue := MonthlyRevenue(p); p.ManagementFee > 0 && revenue > 0 {
		total += (p.ManagementFee / 100) * revenue
	}
	total += p.AssociationFee / 12
	return total
}

// BookingRevenue returns what a booking earns after the property's
// management fee is taken off each night.
func BookingRevenue(b *models.Booking, managementFeePercent float64) float64 {
	nightlyFee := managementFeePercent / 100 * b.NightlyRate
	return (b.NightlyRate - nightlyFee) * float64(b.Nights())
}
