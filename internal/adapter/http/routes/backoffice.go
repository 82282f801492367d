package routes

import (
	"primefinish/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathJobs      = "/jobs"
	PathCatalogs  = "/catalogs"
	PathExpenses  = "/expenses"
	PathPayouts   = "/payouts"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	estimateHandler *handlers.EstimateHandler,
	invoiceHandler *handlers.InvoiceHandler,
	jobHandler *handlers.JobHandler,
	catalogHandler *handlers.CatalogHandler,
	expenseHandler *handlers.ExpenseHandler,
	payoutHandler *handlers.StaffPaymentHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.SaveEstimate)
		estimates.DELETE("/:index", estimateHandler.DeleteEstimate)
		estimates.GET("/next-number", estimateHandler.NextNumber)
		estimates.POST("/preview", estimateHandler.PreviewTotals)
		estimates.GET("/:number/pdf", estimateHandler.EstimatePDF)
		estimates.POST("/:number/open", jobHandler.OpenJob)
		estimates.POST("/:number/close", jobHandler.CloseJob)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/open", jobHandler.ListOpenJobs)
		jobs.GET("/closed", jobHandler.ListClosedJobs)
		jobs.DELETE("/open/:index", jobHandler.DeleteOpenJob)
		jobs.DELETE("/closed/:index", jobHandler.DeleteClosedJob)
		jobs.PATCH("/open/:number/rooms/:room/progress", jobHandler.ToggleRoomProgress)
		jobs.PATCH("/open/:number/rooms/:room/note", jobHandler.SetRoomNote)
		jobs.POST("/closed/:number/invoice", jobHandler.CreateInvoiceFromJob)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.SaveInvoice)
		invoices.DELETE("/:index", invoiceHandler.DeleteInvoice)
		invoices.GET("/:number/pdf", invoiceHandler.InvoicePDF)
	}

	catalogs := rg.Group(PathCatalogs)
	{
		catalogs.GET("/:side", catalogHandler.GetCatalog)
		catalogs.PUT("/:side", catalogHandler.PutCatalog)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.GET("", expenseHandler.ListExpenses)
		expenses.POST("", expenseHandler.AddExpense)
		expenses.PUT("/:index", expenseHandler.UpdateExpense)
		expenses.DELETE("/:index", expenseHandler.DeleteExpense)
		expenses.GET("/report", expenseHandler.ExpenseReport)
	}

	payouts := rg.Group(PathPayouts)
	{
		payouts.GET("", payoutHandler.ListPayouts)
		payouts.POST("", payoutHandler.AddPayout)
		payouts.DELETE("/:index", payoutHandler.DeletePayout)
		payouts.GET("/report", payoutHandler.PayoutReport)
	}
}
