package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/models"
)

// Expense and income handlers share the list-by-property filter.

func (h *Handler) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if expense.PropertyID == 0 || expense.Payee == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and payee are required"})
		return
	}

	if err := h.db.CreateExpense(&expense); err != nil {
		h.logger.WithError(err).Error("Failed to create expense")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) GetExpense(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	expense, err := h.db.GetExpense(id)
	if err != nil {
		h.respondError(c, err, "Failed to get expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *Handler) ListExpenses(c *gin.Context) {
	propertyID, ok := h.queryPropertyID(c)
	if !ok {
		return
	}

	expenses, err := h.db.ListExpenses(propertyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetExpense(id); err != nil {
		h.respondError(c, err, "Failed to get expense")
		return
	}

	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	expense.ID = id

	if err := h.db.UpdateExpense(&expense); err != nil {
		h.respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteExpense(id); err != nil {
		h.respondError(c, err, "Failed to delete expense")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) CreateIncome(c *gin.Context) {
	var income models.Income
	if err := c.ShouldBindJSON(&income); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if income.PropertyID == 0 || income.Payer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and payer are required"})
		return
	}

	if err := h.db.CreateIncome(&income); err != nil {
		h.logger.WithError(err).Error("Failed to create income")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create income"})
		return
	}
	c.JSON(http.StatusCreated, income)
}

func (h *Handler) GetIncome(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	income, err := h.db.GetIncome(id)
	if err != nil {
		h.respondError(c, err, "Failed to get income")
		return
	}
	c.JSON(http.StatusOK, income)
}

func (h *Handler) ListIncomes(c *gin.Context) {
	propertyID, ok := h.queryPropertyID(c)
	if !ok {
		return
	}

	incomes, err := h.db.ListIncomes(propertyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list incomes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list incomes"})
		return
	}
	c.JSON(http.StatusOK, incomes)
}

func (h *Handler) UpdateIncome(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetIncome(id); err != nil {
		h.respondError(c, err, "Failed to get income")
		return
	}

	var income models.Income
	if err := c.ShouldBindJSON(&income); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	income.ID = id

	if err := h.db.UpdateIncome(&income); err != nil {
		h.respondError(c, err, "Failed to update income")
		return
	}
	c.JSON(http.StatusOK, income)
}

func (h *Handler) DeleteIncome(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteIncome(id); err != nil {
		h.respondError(c, err, "Failed to delete income")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
