package api

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.POST("/properties", handler.CreateProperty)
		api.GET("/properties", handler.ListProperties)
		api.GET("/properties/:id", handler.GetProperty)
		api.PUT("/properties/:id", handler.UpdateProperty)
		api.DELETE("/properties/:id", handler.DeleteProperty)
		api.POST("/properties/:id/contacts/:contact_id", handler.AttachContact)
		api.DELETE("/properties/:id/contacts/:contact_id", handler.DetachContact)

		api.GET("/properties/:id/report", handler.GetFinancialReport)
		api.GET("/properties/:id/deductions", handler.GetTaxDeductions)
		api.GET("/properties/:id/amortization", handler.GetAmortizationSchedule)
		api.POST("/properties/:id/refresh-sales-tax", handler.RefreshSalesTax)
		api.POST("/refresh-sales-tax", handler.RefreshAllSalesTax)

		api.POST("/mortgages", handler.CreateMortgage)
		api.GET("/mortgages", handler.ListMortgages)
		api.GET("/mortgages/:id", handler.GetMortgage)
		api.PUT("/mortgages/:id", handler.UpdateMortgage)
		api.DELETE("/mortgages/:id", handler.DeleteMortgage)

		api.POST("/contacts", handler.CreateContact)
		api.GET("/contacts", handler.ListContacts)
		api.GET("/contacts/:id", handler.GetContact)
		api.PUT("/contacts/:id", handler.UpdateContact)
		api.DELETE("/contacts/:id", handler.DeleteContact)
		api.POST("/contacts/email", handler.EmailContacts)

		api.POST("/expenses", handler.CreateExpense)
		api.GET("/expenses", handler.ListExpenses)
		api.GET("/expenses/:id", handler.GetExpense)
		api.PUT("/expenses/:id", handler.UpdateExpense)
		api.DELETE("/expenses/:id", handler.DeleteExpense)

		api.POST("/incomes", handler.CreateIncome)
		api.GET("/incomes", handler.ListIncomes)
		api.GET("/incomes/:id", handler.GetIncome)
		api.PUT("/incomes/:id", handler.UpdateIncome)
		api.DELETE("/incomes/:id", handler.DeleteIncome)

		api.POST("/inventory", handler.CreateInventory)
		api.GET("/inventory", handler.ListInventory)
		api.GET("/inventory/:id", handler.GetInventory)
		api.PUT("/inventory/:id", handler.UpdateInventory)
		api.DELETE("/inventory/:id", handler.DeleteInventory)

		api.POST("/bookings", handler.CreateBooking)
		api.GET("/bookings", handler.ListBookings)
		api.GET("/bookings/:id", handler.GetBooking)
		api.PUT("/bookings/:id", handler.UpdateBooking)
		api.DELETE("/bookings/:id", handler.DeleteBooking)

		api.POST("/links", handler.CreateLink)
		api.GET("/links", handler.ListLinks)
		api.DELETE("/links/:id", handler.DeleteLink)

		api.POST("/tax-rates", handler.CreateTaxRate)
		api.GET("/tax-rates", handler.ListTaxRates)
		api.GET("/tax-rates/:id", handler.GetTaxRate)
		api.PUT("/tax-rates/:id", handler.UpdateTaxRate)
		api.DELETE("/tax-rates/:id", handler.DeleteTaxRate)
	}
}
