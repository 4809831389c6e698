package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/models"
)

func (h *Handler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if property.Address == "" || property.City == "" || property.State == "" || property.Zipcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address, city, state, and zipcode are required"})
		return
	}

	if err := h.db.CreateProperty(&property); err != nil {
		h.logger.WithError(err).Error("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	property, err := h.db.GetProperty(id)
	if err != nil {
		h.respondError(c, err, "Failed to get property")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.db.ListProperties(c.Query("city"))
	if err != nil {
		h.logger.WithError(err).Error("Failed to list properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetProperty(id); err != nil {
		h.respondError(c, err, "Failed to get property")
		return
	}

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	property.ID = id

	if err := h.db.UpdateProperty(&property); err != nil {
		h.respondError(c, err, "Failed to update property")
		return
	}
	c.JSON(http.StatusOK, property)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteProperty(id); err != nil {
		h.respondError(c, err, "Failed to delete property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) AttachContact(c *gin.Context) {
	propertyID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	contactID, ok := h.paramID(c, "contact_id")
	if !ok {
		return
	}

	if err := h.db.AttachContact(propertyID, contactID); err != nil {
		h.respondError(c, err, "Failed to attach contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "attached"})
}

func (h *Handler) DetachContact(c *gin.Context) {
	propertyID, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	contactID, ok := h.paramID(c, "contact_id")
	if !ok {
		return
	}

	if err := h.db.DetachContact(propertyID, contactID); err != nil {
		h.respondError(c, err, "Failed to detach contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "detached"})
}
