package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propman/server/internal/database"
	"propman/server/internal/finance"
	"propman/server/internal/format"
)

// GetFinancialReport answers the full financial summary for a property. The
// formatted block carries the display strings the admin UI shows verbatim.
func (h *Handler) GetFinancialReport(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	report, err := h.reports.FinancialReport(id)
	if err != nil {
		h.respondError(c, err, "Failed to build financial report")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"formatted": gin.H{
			"monthly_revenue": format.Dollars(report.MonthlyRevenue),
			"monthly_cost":    format.Dollars(report.MonthlyCost),
			"total_expenses":  format.Dollars(report.TotalExpenses),
			"total_income":    format.Dollars(report.TotalIncome),
			"total_inventory": format.Dollars(report.TotalInventory),
		},
	})
}

// GetTaxDeductions answers the per-year deductible totals for a property.
func (h *Handler) GetTaxDeductions(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	deductions, err := h.reports.TaxDeductions(id)
	if err != nil {
		h.respondError(c, err, "Failed to compute tax deductions")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"property_id": id,
		"deductions":  deductions,
	})
}

// GetAmortizationSchedule answers the mortgage payment schedule. The optional
// "start" and "end" query parameters (2006-01-02) clip it to a window; both
// must be given together.
func (h *Handler) GetAmortizationSchedule(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	var start, end *time.Time
	startRaw, endRaw := c.Query("start"), c.Query("end")
	if (startRaw == "") != (endRaw == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be provided together"})
		return
	}
	if startRaw != "" {
		s, err := time.Parse("2006-01-02", startRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
			return
		}
		e, err := time.Parse("2006-01-02", endRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
			return
		}
		start, end = &s, &e
	}

	schedule, err := h.reports.AmortizationSchedule(id, start, end)
	if err != nil {
		switch err {
		case finance.ErrNoMortgage:
			c.JSON(http.StatusNotFound, gin.H{"error": "Property has no mortgage"})
		case finance.ErrOutsideTerm:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requested window is outside the mortgage term"})
		default:
			h.respondError(c, err, "Failed to build amortization schedule")
		}
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// RefreshSalesTax recomputes the cached sales tax for one property's
// inventory.
func (h *Handler) RefreshSalesTax(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	updated, err := h.reports.RefreshSalesTax(id)
	if err != nil {
		if err == database.ErrTaxRateNotFound {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No sales tax rate configured for this property"})
			return
		}
		h.respondError(c, err, "Failed to refresh sales tax")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed", "updated": updated})
}

// RefreshAllSalesTax sweeps every property, skipping ones without a
// configured rate.
func (h *Handler) RefreshAllSalesTax(c *gin.Context) {
	updated, err := h.reports.RefreshAllSalesTax()
	if err != nil {
		h.respondError(c, err, "Failed to refresh sales tax")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed", "updated": updated})
}
