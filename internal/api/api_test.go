package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propman/server/internal/database"
	"propman/server/internal/models"
)

// newTestServer wires a fresh in-memory database behind the full route table.
func newTestServer(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name)
	db, err := database.New(dsn, logger)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	router := gin.New()
	SetupRoutes(router, NewHandler(db, logger, nil))
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedProperty(t *testing.T, db *database.Database) *models.Property {
	t.Helper()
	property := &models.Property{
		Address:       "123 Main St",
		City:          "Austin",
		State:         "Texas",
		Zipcode:       "78701",
		Cost:          300000,
		ManagementFee: 10,
	}
	require.NoError(t, db.CreateProperty(property))
	return property
}

func TestCreatePropertyEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, http.MethodPost, "/api/properties", gin.H{
		"address": "42 Elm St",
		"city":    "Denver",
		"state":   "Colorado",
		"zipcode": "80202",
		"cost":    250000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Property
	decodeBody(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "42 Elm St", created.Address)
}

func TestCreatePropertyRequiresAddress(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, http.MethodPost, "/api/properties", gin.H{
		"city":    "Denver",
		"state":   "Colorado",
		"zipcode": "80202",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPropertyNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, http.MethodGet, "/api/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/properties/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteProperty(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/properties/%d", property.ID), gin.H{
		"address": property.Address,
		"city":    property.City,
		"state":   property.State,
		"zipcode": property.Zipcode,
		"cost":    320000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Property
	decodeBody(t, w, &updated)
	assert.Equal(t, 320000.0, updated.Cost)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/properties/%d", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/properties/%d", property.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPropertiesFiltersByCity(t *testing.T) {
	router, db := newTestServer(t)
	seedProperty(t, db)
	require.NoError(t, db.CreateProperty(&models.Property{
		Address: "9 Pine Rd", City: "Boise", State: "Idaho", Zipcode: "83702",
	}))

	w := doRequest(t, router, http.MethodGet, "/api/properties?city=Austin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var properties []models.Property
	decodeBody(t, w, &properties)
	require.Len(t, properties, 1)
	assert.Equal(t, "Austin", properties[0].City)
}

func TestGetMortgageIncludesMonthlyPayment(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	mortgage := &models.Mortgage{
		PropertyID: property.ID,
		Amount:     200000,
		Term:       30,
		Rate:       6,
		StartDate:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.CreateMortgage(mortgage))

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/mortgages/%d", mortgage.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mortgage       models.Mortgage `json:"mortgage"`
		MonthlyPayment float64         `json:"monthly_payment"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, mortgage.ID, resp.Mortgage.ID)
	assert.InDelta(t, 1199.10, resp.MonthlyPayment, 0.01)
}

func TestCreateMortgageValidation(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	w := doRequest(t, router, http.MethodPost, "/api/mortgages", gin.H{
		"property_id": property.ID,
		"amount":      0,
		"term":        30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingIncludesDerivedFigures(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	contact := &models.Contact{FirstName: "Ada", LastName: "Byron"}
	require.NoError(t, db.CreateContact(contact))

	booking := &models.Booking{
		PropertyID:  property.ID,
		ContactID:   contact.ID,
		NightlyRate: 100,
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.CreateBooking(booking))

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/bookings/%d", booking.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Nights  int     `json:"nights"`
		Revenue float64 `json:"revenue"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 4, resp.Nights)
	// 10 percent management fee off each of four 100 dollar nights
	assert.InDelta(t, 360.0, resp.Revenue, 0.001)
}

func TestCreateBookingRejectsInvertedDates(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	contact := &models.Contact{FirstName: "Ada", LastName: "Byron"}
	require.NoError(t, db.CreateContact(contact))

	w := doRequest(t, router, http.MethodPost, "/api/bookings", gin.H{
		"property_id": property.ID,
		"contact_id":  contact.ID,
		"start_date":  "2024-06-05T00:00:00Z",
		"end_date":    "2024-06-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryQualityValidation(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	w := doRequest(t, router, http.MethodPost, "/api/inventory", gin.H{
		"property_id": property.ID,
		"item":        "Sofa",
		"quality":     "Pristine",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/inventory", gin.H{
		"property_id": property.ID,
		"item":        "Sofa",
		"quality":     "Used",
		"cost":        400,
		"quantity":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.Inventory
	decodeBody(t, w, &item)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/inventory/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalCost float64 `json:"total_cost"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 800.0, resp.TotalCost)
}

func TestExpenseListFilter(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)
	other := &models.Property{Address: "9 Pine Rd", City: "Boise", State: "Idaho", Zipcode: "83702"}
	require.NoError(t, db.CreateProperty(other))

	require.NoError(t, db.CreateExpense(&models.Expense{PropertyID: property.ID, Payee: "Plumber", Amount: 120}))
	require.NoError(t, db.CreateExpense(&models.Expense{PropertyID: other.ID, Payee: "Roofer", Amount: 900}))

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/expenses?property_id=%d", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var expenses []models.Expense
	decodeBody(t, w, &expenses)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Plumber", expenses[0].Payee)

	w = doRequest(t, router, http.MethodGet, "/api/expenses?property_id=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinancialReportEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	require.NoError(t, db.CreateExpense(&models.Expense{
		PropertyID: property.ID, Payee: "Plumber", Amount: 100, Tax: 8,
		Date: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), TaxDeduction: true,
	}))
	require.NoError(t, db.CreateIncome(&models.Income{
		PropertyID: property.ID, Payer: "Guest", Amount: 2000,
	}))

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/properties/%d/report", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Report struct {
			PropertyID    uint            `json:"property_id"`
			TotalExpenses float64         `json:"total_expenses"`
			TotalIncome   float64         `json:"total_income"`
			TaxDeductions map[int]float64 `json:"tax_deductions"`
		} `json:"report"`
		Formatted struct {
			TotalExpenses string `json:"total_expenses"`
		} `json:"formatted"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, property.ID, resp.Report.PropertyID)
	assert.Equal(t, 108.0, resp.Report.TotalExpenses)
	assert.Equal(t, 2000.0, resp.Report.TotalIncome)
	assert.Equal(t, 108.0, resp.Report.TaxDeductions[2023])
	assert.Equal(t, "$108.00", resp.Formatted.TotalExpenses)
}

func TestAmortizationEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/properties/%d/amortization", property.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, db.CreateMortgage(&models.Mortgage{
		PropertyID: property.ID,
		Amount:     200000,
		Term:       30,
		Rate:       6,
		StartDate:  time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/properties/%d/amortization", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	decodeBody(t, w, &rows)
	assert.Len(t, rows, 360)

	path := fmt.Sprintf("/api/properties/%d/amortization?start=2023-01-01&end=2023-12-31", property.ID)
	w = doRequest(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &rows)
	assert.Len(t, rows, 12)

	path = fmt.Sprintf("/api/properties/%d/amortization?start=2023-01-01", property.ID)
	w = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path = fmt.Sprintf("/api/properties/%d/amortization?start=2099-01-01&end=2099-12-31", property.ID)
	w = doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshSalesTaxEndpoint(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	require.NoError(t, db.CreateInventory(&models.Inventory{
		PropertyID: property.ID, Item: "TV", Cost: 800, HasTax: true, Quantity: 1,
	}))

	path := fmt.Sprintf("/api/properties/%d/refresh-sales-tax", property.ID)
	w := doRequest(t, router, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	require.NoError(t, db.CreateTaxRate(&models.TaxRate{City: "Austin", State: "Texas", SalesRate: 0.0825}))

	w = doRequest(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Updated int `json:"updated"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 1, resp.Updated)
}

func TestContactAttachDetach(t *testing.T) {
	router, db := newTestServer(t)
	property := seedProperty(t, db)

	contact := &models.Contact{FirstName: "Ada", LastName: "Byron", Email: "ada@example.com"}
	require.NoError(t, db.CreateContact(contact))

	path := fmt.Sprintf("/api/properties/%d/contacts/%d", property.ID, contact.ID)
	w := doRequest(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded, err := db.GetProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Contacts, 1)

	w = doRequest(t, router, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	loaded, err = db.GetProperty(property.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Contacts)
}

func TestEmailContactsWithoutMailer(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, http.MethodPost, "/api/contacts/email", gin.H{
		"contact_ids": []uint{1},
		"subject":     "Hello",
		"body":        "Hi {name}",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTaxRateCRUD(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(t, router, http.MethodPost, "/api/tax-rates", gin.H{
		"city": "Austin", "state": "Texas", "sales_rate": 0.0825,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var rate models.TaxRate
	decodeBody(t, w, &rate)

	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/tax-rates/%d", rate.ID), gin.H{
		"city": "Austin", "state": "Texas", "sales_rate": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/tax-rates/%d", rate.ID), gin.H{
		"city": "Austin", "state": "Texas", "sales_rate": 0.09,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/tax-rates/%d", rate.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &rate)
	assert.Equal(t, 0.09, rate.SalesRate)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/tax-rates/%d", rate.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/tax-rates/%d", rate.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
