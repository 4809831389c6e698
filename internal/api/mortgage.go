package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/finance"
	"propman/server/internal/models"
)

func (h *Handler) CreateMortgage(c *gin.Context) {
	var mortgage models.Mortgage
	if err := c.ShouldBindJSON(&mortgage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if mortgage.PropertyID == 0 || mortgage.Amount <= 0 || mortgage.Term <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property, amount, and term are required"})
		return
	}

	if err := h.db.CreateMortgage(&mortgage); err != nil {
		h.logger.WithError(err).Error("Failed to create mortgage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mortgage"})
		return
	}
	c.JSON(http.StatusCreated, mortgage)
}

func (h *Handler) GetMortgage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	mortgage, err := h.db.GetMortgage(id)
	if err != nil {
		h.respondError(c, err, "Failed to get mortgage")
		return
	}

	property, err := h.db.GetProperty(mortgage.PropertyID)
	if err != nil {
		h.respondError(c, err, "Failed to get mortgaged property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mortgage":        mortgage,
		"monthly_payment": finance.MonthlyPayment(mortgage, property),
	})
}

func (h *Handler) ListMortgages(c *gin.Context) {
	mortgages, err := h.db.ListMortgages()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list mortgages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list mortgages"})
		return
	}
	c.JSON(http.StatusOK, mortgages)
}

func (h *Handler) UpdateMortgage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetMortgage(id); err != nil {
		h.respondError(c, err, "Failed to get mortgage")
		return
	}

	var mortgage models.Mortgage
	if err := c.ShouldBindJSON(&mortgage); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	mortgage.ID = id

	if err := h.db.UpdateMortgage(&mortgage); err != nil {
		h.respondError(c, err, "Failed to update mortgage")
		return
	}
	c.JSON(http.StatusOK, mortgage)
}

func (h *Handler) DeleteMortgage(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteMortgage(id); err != nil {
		h.respondError(c, err, "Failed to delete mortgage")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
