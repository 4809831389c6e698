package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"propman/server/internal/database"
	"propman/server/internal/mailer"
	"propman/server/internal/reports"
)

type Handler struct {
	db      *database.Database
	logger  *logrus.Logger
	reports *reports.Service
	mailer  *mailer.Service
}

func NewHandler(db *database.Database, logger *logrus.Logger, mail *mailer.Service) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:      db,
		logger:  logger,
		reports: reports.NewService(db, logger),
		mailer:  mail,
	}
}

// Reports exposes the derivation service so the scheduler can drive it.
func (h *Handler) Reports() *reports.Service {
	return h.reports
}

// paramID parses a numeric path parameter; on failure it answers 400 and
// reports false.
func (h *Handler) paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// queryPropertyID reads the optional ?property_id filter used by the list
// endpoints; zero means unfiltered.
func (h *Handler) queryPropertyID(c *gin.Context) (uint, bool) {
	value := c.Query("property_id")
	if value == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property_id"})
		return 0, false
	}
	return uint(id), true
}

// respondError answers 404 for missing records and 500 otherwise.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	h.logger.WithError(err).Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
