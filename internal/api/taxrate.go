package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/models"
)

func (h *Handler) CreateTaxRate(c *gin.Context) {
	var rate models.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if rate.City == "" || rate.State == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City and state are required"})
		return
	}
	if rate.SalesRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sales rate cannot be negative"})
		return
	}

	if err := h.db.CreateTaxRate(&rate); err != nil {
		h.logger.WithError(err).Error("Failed to create tax rate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tax rate"})
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *Handler) GetTaxRate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	rate, err := h.db.GetTaxRateByID(id)
	if err != nil {
		h.respondError(c, err, "Failed to get tax rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *Handler) ListTaxRates(c *gin.Context) {
	rates, err := h.db.ListTaxRates()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list tax rates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tax rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *Handler) UpdateTaxRate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetTaxRateByID(id); err != nil {
		h.respondError(c, err, "Failed to get tax rate")
		return
	}

	var rate models.TaxRate
	if err := c.ShouldBindJSON(&rate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if rate.SalesRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sales rate cannot be negative"})
		return
	}
	rate.ID = id

	if err := h.db.UpdateTaxRate(&rate); err != nil {
		h.respondError(c, err, "Failed to update tax rate")
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *Handler) DeleteTaxRate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteTaxRate(id); err != nil {
		h.respondError(c, err, "Failed to delete tax rate")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
