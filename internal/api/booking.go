package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/finance"
	"propman/server/internal/models"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if booking.PropertyID == 0 || booking.ContactID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and contact are required"})
		return
	}
	if !booking.EndDate.After(booking.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}

	if err := h.db.CreateBooking(&booking); err != nil {
		h.logger.WithError(err).Error("Failed to create booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	booking, err := h.db.GetBooking(id)
	if err != nil {
		h.respondError(c, err, "Failed to get booking")
		return
	}

	property, err := h.db.GetProperty(booking.PropertyID)
	if err != nil {
		h.respondError(c, err, "Failed to get booked property")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"nights":  booking.Nights(),
		"revenue": finance.BookingRevenue(booking, property.ManagementFee),
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	propertyID, ok := h.queryPropertyID(c)
	if !ok {
		return
	}

	bookings, err := h.db.ListBookings(propertyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetBooking(id); err != nil {
		h.respondError(c, err, "Failed to get booking")
		return
	}

	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !booking.EndDate.After(booking.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}
	booking.ID = id

	if err := h.db.UpdateBooking(&booking); err != nil {
		h.respondError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteBooking(id); err != nil {
		h.respondError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Links

func (h *Handler) CreateLink(c *gin.Context) {
	var link models.Link
	if err := c.ShouldBindJSON(&link); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if link.PropertyID == 0 || link.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Property and URL are required"})
		return
	}

	if err := h.db.CreateLink(&link); err != nil {
		h.logger.WithError(err).Error("Failed to create link")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *Handler) ListLinks(c *gin.Context) {
	propertyID, ok := h.queryPropertyID(c)
	if !ok {
		return
	}

	links, err := h.db.ListLinks(propertyID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list links")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *Handler) DeleteLink(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteLink(id); err != nil {
		h.respondError(c, err, "Failed to delete link")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
