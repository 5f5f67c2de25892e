package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/stall-queue/docs"
	"github.com/MikeMC777/stall-queue/internal/customer"
	"github.com/MikeMC777/stall-queue/internal/httpx"
	"github.com/MikeMC777/stall-queue/internal/inventory"
	"github.com/MikeMC777/stall-queue/internal/issue"
	"github.com/MikeMC777/stall-queue/internal/order"
	"github.com/MikeMC777/stall-queue/internal/payment"
)

type services struct {
	health    checker
	orders    order.Repository
	inventory inventory.Repository
	payments  payment.Repository
	customers customer.Repository
	issues    issue.Repository
	analytics order.Analytics
	policy    order.Policy
	today     func() string // stall-local YYYY-MM-DD
}

func newRouter(s services, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	r.GET("/health", healthHandler(s.health))

	r.GET("/orders", listOrdersHandler(s.orders))
	r.POST("/orders", createOrderHandler(s.orders, s.today))
	r.GET("/orders/active", listActiveOrdersHandler(s.orders))
	r.GET("/orders/:id", getOrderHandler(s.orders))
	r.PATCH("/orders/:id", updateOrderHandler(s.orders, s.policy))
	r.PATCH("/orders/:id/check-in", checkInOrderHandler(s.orders))

	r.GET("/menu-inventory/:date", getInventoryHandler(s.inventory, s.today))
	r.PATCH("/menu-inventory/:id", updateInventoryHandler(s.inventory))

	r.POST("/payments", createPaymentHandler(s.payments))
	r.GET("/customers/:phone", getCustomerHandler(s.customers))

	r.GET("/customer-issues", listIssuesHandler(s.issues))
	r.POST("/customer-issues", createIssueHandler(s.issues))
	r.PATCH("/customer-issues/:id/status", updateIssueStatusHandler(s.issues))

	r.GET("/analytics/owner-dashboard", ownerDashboardHandler(s.analytics, s.today))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}
