package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/models"
)

func (h *Handler) CreateInventory(c *gin.Context) {
	var item models.Inventory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if item.PropertyID == 0 || item.Item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and item name are required"})
		return
	}
	if item.Quality != "" && !item.Quality.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quality"})
		return
	}

	if err := h.db.CreateInventory(&item); err != nil {
		h.logger.WithError(err).Error("Failed to create inventory item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetInventory(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.db.GetInventory(id)
	if err != nil {
		h.respondError(c, err, "Failed to get inventory item")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":       item,
		"total_cost": item.TotalCost(),
	})
}

func (h *Handler) ListInventory(c *gin.Context) {
	propertyID, ok := h.queryPropertyID(c)
	if !ok {
		return
	}

	items, err := h.db.ListInventory(propertyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list inventory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inventory"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetInventory(id); err != nil {
		h.respondError(c, err, "Failed to get inventory item")
		return
	}

	var item models.Inventory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if item.Quality != "" && !item.Quality.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quality"})
		return
	}
	item.ID = id

	if err := h.db.UpdateInventory(&item); err != nil {
		h.respondError(c, err, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteInventory(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteInventory(id); err != nil {
		h.respondError(c, err, "Failed to delete inventory item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
