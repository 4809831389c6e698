package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"propman/server/internal/models"
)

func TestMonthlyRevenue(t *testing.T) {
	tests := []struct {
		name     string
		property *models.Property
		expected float64
	}{
		{
			name:     "Typical short-term rental",
			property: &models.Property{NightlyRate: 100, Occupancy: 60},
			expected: 100 * (0.6 * 365) / 12,
		},
		{
			name:     "Missing nightly rate counts as zero",
			property: &models.Property{Occupancy: 60},
			expected: 0,
		},
		{
			name:     "Missing occupancy counts as zero",
			property: &models.Property{NightlyRate: 100},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MonthlyRevenue(tt.property), 0.001)
		})
	}
}

func TestMonthlyCost(t *testing.T) {
	property := &models.Property{
		Insurance:      1200,
		Tax:            2400,
		AssociationFee: 600,
		ManagementFee:  10,
		NightlyRate:    100,
		Occupancy:      60,
	}
	revenue := MonthlyRevenue(property)

	t.Run("No mortgage", func(t *testing.T) {
		expected := 0.1*revenue + 50 // management fee + HOA/12
		assert.InDelta(t, expected, MonthlyCost(property, nil), 0.001)
	})

	t.Run("Mortgage without escrow adds insurance and tax", func(t *testing.T) {
		m := &models.Mortgage{Amount: 200000, Term: 30, Rate: 6}
		expected := BasePayment(200000, 6, 30) + 100 + 200 + 0.1*revenue + 50
		assert.InDelta(t, expected, MonthlyCost(property, m), 0.001)
	})

	t.Run("Escrowed mortgage folds insurance and tax into the payment", func(t *testing.T) {
		m := &models.Mortgage{Amount: 200000, Term: 30, Rate: 6, HasInsurance: true, HasTax: true}
		// Same total either way: escrowed amounts move into the payment.
		expected := BasePayment(200000, 6, 30) + 100 + 200 + 0.1*revenue + 50
		assert.InDelta(t, expected, MonthlyCost(property, m), 0.001)
	})

	t.Run("No revenue means no management fee", func(t *testing.T) {
		vacant := &models.Property{AssociationFee: 1200, ManagementFee: 10}
		assert.InDelta(t, 100, MonthlyCost(vacant, nil), 0.001)
	})
}

func TestBookingRevenue(t *testing.T) {
	booking := &models.Booking{
		NightlyRate: 150,
		StartDate:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 4, booking.Nights())
	// 150 less a 10% fee, over four nights.
	assert.InDelta(t, 540, BookingRevenue(booking, 10), 0.001)
	// No management fee keeps the full rate.
	assert.InDelta(t, 600, BookingRevenue(booking, 0), 0.001)
}

func TestSalesTax(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		rate     float64
		expected float64
	}{
		{name: "Rounds to cents", cost: 19.99, rate: 0.0825, expected: 1.65},
		{name: "Whole dollars", cost: 100, rate: 0.06, expected: 6},
		{name: "Zero rate", cost: 500, rate: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalesTax(tt.cost, tt.rate))
		})
	}
}
