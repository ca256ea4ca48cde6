package routes

import (
	"escritorio_juridico/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCases        = "/cases"
	PathTransactions = "/transactions"
	PathDashboard    = "/dashboard"
)

func addCaseRoutes(rg *gin.RouterGroup, caseHandler *handlers.CaseHandler, transactionHandler *handlers.FinancialTransactionHandler) {
	cases := rg.Group(PathCases)
	{
		cases.POST("", caseHandler.CreateCase)
		cases.GET("", caseHandler.ListCases)
		cases.GET("/:id", caseHandler.GetCase)
		cases.PATCH("/:id", caseHandler.UpdateCase)
		cases.DELETE("/:id", caseHandler.DeleteCase)

		// Status only changes through the pipeline.
		cases.GET("/:id/transitions", caseHandler.GetTransitions)
		cases.POST("/:id/transitions", caseHandler.ApplyTransition)
		cases.GET("/:id/movements", caseHandler.ListMovements)

		cases.POST("/:id/transactions", transactionHandler.RegisterTransaction)
		cases.GET("/:id/transactions", transactionHandler.ListTransactions)
	}

	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("/:id/settle", transactionHandler.SettleTransaction)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/phases", caseHandler.PhaseDashboard)
	}
}
