package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propman/server/internal/models"
)

// EmailRequest asks the mailer to send a message to one or more contacts.
// The "{name}" placeholder in subject or body is replaced per recipient.
type EmailRequest struct {
	ContactIDs []uint `json:"contact_ids" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	Body       string `json:"body" binding:"required"`
}

func (h *Handler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if contact.FirstName == "" || contact.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First and last name are required"})
		return
	}

	if err := h.db.CreateContact(&contact); err != nil {
		h.logger.WithError(err).Error("Failed to create contact")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) GetContact(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}

	contact, err := h.db.GetContact(id)
	if err != nil {
		h.respondError(c, err, "Failed to get contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.db.ListContacts()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.db.GetContact(id); err != nil {
		h.respondError(c, err, "Failed to get contact")
		return
	}

	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	contact.ID = id

	if err := h.db.UpdateContact(&contact); err != nil {
		h.respondError(c, err, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.db.DeleteContact(id); err != nil {
		h.respondError(c, err, "Failed to delete contact")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// EmailContacts sends an email to the requested contacts.
func (h *Handler) EmailContacts(c *gin.Context) {
	if h.mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Mailer is not configured"})
		return
	}

	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	contacts, err := h.db.GetContacts(req.ContactIDs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	if len(contacts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matching contacts"})
		return
	}

	if err := h.mailer.EmailContacts(contacts, req.Subject, req.Body); err != nil {
		h.logger.WithError(err).Error("Failed to email contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent", "recipients": len(contacts)})
}
