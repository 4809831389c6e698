package database

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"propman/server/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTaxRateNotFound is returned when no sales tax rate is configured
	// for a city and state. Callers decide the fallback policy; the store
	// never silently substitutes zero.
	ErrTaxRateNotFound = errors.New("sales tax rate not found")
)

type Database struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func New(dbPath string, logger *logrus.Logger) (*Database, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return &Database{db: db, logger: logger}, nil
}

// RunMigrations creates or updates the schema for every tracked entity.
func (d *Database) RunMigrations() error {
	entities := []interface{}{
		&models.Property{},
		&models.Mortgage{},
		&models.Contact{},
		&models.Expense{},
		&models.Income{},
		&models.Inventory{},
		&models.Booking{},
		&models.Link{},
		&models.TaxRate{},
	}
	for _, entity := range entities {
		if err := d.db.AutoMigrate(entity); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// translate maps gorm's sentinel onto the package's not-found error so
// callers never import gorm to check it.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
