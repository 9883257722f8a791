package routes

import (
	"autoshop_billing/internal/adapter/http/handlers"
	"autoshop_billing/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceCosts     = "/service-costs"
	PathLoyaltyDiscounts = "/loyalty-discounts"
	PathFinance          = "/finance"
	PathCustomerPayments = "/customer-payments"
)

// Roles allowed on the /finance surface: reviews, invoicing and the payment
// pipeline.
var financeRoles = []string{"finance_manager", "admin"}

func addFinanceRoutes(
	rg *gin.RouterGroup,
	serviceCostHandler *handlers.ServiceCostHandler,
	loyaltyHandler *handlers.LoyaltyDiscountHandler,
	paymentHandler *handlers.CustomerPaymentHandler,
) {
	serviceCosts := rg.Group(PathServiceCosts)
	{
		serviceCosts.POST("", serviceCostHandler.Submit)
		serviceCosts.GET("", serviceCostHandler.ListByStatus)
		serviceCosts.GET("/:id", serviceCostHandler.GetByID)
		serviceCosts.PUT("/:id", serviceCostHandler.UpdateEstimate)
		serviceCosts.DELETE("/:id", serviceCostHandler.Delete)
	}

	loyalty := rg.Group(PathLoyaltyDiscounts)
	{
		loyalty.POST("", loyaltyHandler.Create)
		loyalty.GET("", loyaltyHandler.ListByCustomer)
		loyalty.GET("/:id", loyaltyHandler.GetByID)
	}

	finance := rg.Group(PathFinance)
	finance.Use(middleware.RequireRoles(financeRoles...))
	{
		finance.PATCH(PathServiceCosts+"/:id/start-review", serviceCostHandler.StartReview)
		finance.PATCH(PathServiceCosts+"/:id/review", serviceCostHandler.Review)
		finance.PATCH(PathServiceCosts+"/:id/invoice", serviceCostHandler.MarkInvoiced)

		finance.PATCH(PathLoyaltyDiscounts+"/:id/review", loyaltyHandler.Review)

		payments := finance.Group(PathCustomerPayments)
		{
			payments.POST("/calculate", paymentHandler.Calculate)
			payments.GET("/service-costs", paymentHandler.ListPayableServiceCosts)
			payments.POST("/process", paymentHandler.Process)
			payments.GET("/summary", paymentHandler.Summary)
			payments.GET("", paymentHandler.List)
			payments.GET("/receipts/:receipt", paymentHandler.GetByReceiptNumber)
			payments.GET("/:id", paymentHandler.GetByID)
		}
	}
}
