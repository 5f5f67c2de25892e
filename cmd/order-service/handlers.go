package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/stall-queue/internal/customer"
	"github.com/MikeMC777/stall-queue/internal/httpx"
	"github.com/MikeMC777/stall-queue/internal/inventory"
	"github.com/MikeMC777/stall-queue/internal/issue"
	"github.com/MikeMC777/stall-queue/internal/order"
	"github.com/MikeMC777/stall-queue/internal/payment"
)

var errNoFields = errors.New("no fields to update")

type httpError struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

type checker interface {
	Check(ctx context.Context) error
}

// fail maps repository errors onto status codes; anything unrecognised is a
// store failure and goes out as 500 with its message.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, issue.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrStatusChanged),
		errors.Is(err, inventory.ErrOversold):
		status = http.StatusConflict
	case errors.Is(err, order.ErrQueueContention):
		status = http.StatusServiceUnavailable
	}
	httpx.Fail(c, status, err)
}

func badRequest(c *gin.Context, err error) {
	httpx.Fail(c, http.StatusBadRequest, err)
}

// @Summary Store reachability
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 500 {object} healthResponse
// @Router /health [get]
func healthHandler(h checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Check(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, healthResponse{
				Status: "unhealthy", Database: "disconnected", Error: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, healthResponse{Status: "healthy", Database: "connected"})
	}
}

// @Summary List all orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Failure 500 {object} httpError
// @Router /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Orders still in the queue, by queue number
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders/active [get]
func listActiveOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListActive(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Get one order
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.Order
// @Failure 404 {object} httpError
// @Router /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOrderHandler inserts the order with today's next queue number; the
// repository registers the customer by phone in the same transaction.
//
// @Summary Create an order and assign today's next queue number
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "order"
// @Success 201 {object} order.Order
// @Failure 400 {object} httpError
// @Failure 503 {object} httpError
// @Router /orders [post]
func createOrderHandler(orders order.Repository, today func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		o, err := orders.Create(c.Request.Context(), order.NewOrder{
			CustomerID:    req.CustomerID,
			Items:         req.Items,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			TotalAmount:   req.TotalAmount,
			PaymentMethod: req.PaymentMethod,
			EstimatedTime: req.EstimatedTime,
			QueueDate:     today(),
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// @Summary Partially update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param update body order.UpdateOrderRequest true "fields to change"
// @Success 200 {object} order.Order
// @Failure 400 {object} httpError
// @Failure 404 {object} httpError
// @Failure 409 {object} httpError
// @Router /orders/{id} [patch]
func updateOrderHandler(repo order.Repository, policy order.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		upd := req.ToUpdate()
		if upd.Empty() {
			badRequest(c, errNoFields)
			return
		}
		ctx := c.Request.Context()
		id := c.Param("id")
		if policy.Strict {
			cur, err := repo.GetByID(ctx, id)
			if err != nil {
				fail(c, err)
				return
			}
			if err := policy.Check(*cur, upd); err != nil {
				fail(c, err)
				return
			}
			upd.IfStatus = &cur.Status
		}
		o, err := repo.Update(ctx, id, upd)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary Mark the customer as arrived
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} order.Order
// @Failure 404 {object} httpError
// @Router /orders/{id}/check-in [patch]
func checkInOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := repo.CheckIn(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// getInventoryHandler lists a day's stock. Today's rows are seeded on demand
// when the service has been running since before midnight.
//
// @Summary Inventory rows for a day
// @Tags inventory
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {array} inventory.Record
// @Failure 400 {object} httpError
// @Router /menu-inventory/{date} [get]
func getInventoryHandler(repo inventory.Repository, today func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			badRequest(c, errors.New("date must be YYYY-MM-DD"))
			return
		}
		ctx := c.Request.Context()
		out, err := repo.ForDate(ctx, date)
		if err == nil && len(out) == 0 && date == today() {
			if _, err = repo.Seed(ctx, date, inventory.Catalog, inventory.DefaultQuantity); err == nil {
				out, err = repo.ForDate(ctx, date)
			}
		}
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Partially update an inventory row
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "inventory row id"
// @Param update body inventory.UpdateInventoryRequest true "quantities"
// @Success 200 {object} inventory.Record
// @Failure 400 {object} httpError
// @Failure 404 {object} httpError
// @Failure 409 {object} httpError
// @Router /menu-inventory/{id} [patch]
func updateInventoryHandler(repo inventory.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inventory.UpdateInventoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		upd := req.ToUpdate()
		if upd.Empty() {
			badRequest(c, errNoFields)
			return
		}
		rec, err := repo.Update(c.Request.Context(), c.Param("id"), upd)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body payment.CreatePaymentRequest true "payment"
// @Success 201 {object} payment.Payment
// @Failure 400 {object} httpError
// @Failure 500 {object} httpError
// @Router /payments [post]
func createPaymentHandler(repo payment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		p, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// @Summary Look up a customer by phone
// @Tags customers
// @Produce json
// @Param phone path string true "phone"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} httpError
// @Router /customers/{phone} [get]
func getCustomerHandler(repo customer.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, err := repo.GetByPhone(c.Request.Context(), c.Param("phone"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, cu)
	}
}

// @Summary List customer issues, newest first
// @Tags issues
// @Produce json
// @Success 200 {array} issue.Issue
// @Failure 500 {object} httpError
// @Router /customer-issues [get]
func listIssuesHandler(repo issue.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Report a problem with an order
// @Tags issues
// @Accept json
// @Produce json
// @Param issue body issue.CreateIssueRequest true "issue"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} httpError
// @Router /customer-issues [post]
func createIssueHandler(repo issue.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req issue.CreateIssueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		i, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, i)
	}
}

// @Summary Move an issue to a new status
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "issue id"
// @Param status body issue.UpdateIssueStatusRequest true "status"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} httpError
// @Failure 404 {object} httpError
// @Router /customer-issues/{id}/status [patch]
func updateIssueStatusHandler(repo issue.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req issue.UpdateIssueStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		i, err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, i)
	}
}

// @Summary Owner dashboard: sales, wait time and queue status counts
// @Tags analytics
// @Produce json
// @Success 200 {object} order.Dashboard
// @Failure 500 {object} httpError
// @Router /analytics/owner-dashboard [get]
func ownerDashboardHandler(repo order.Analytics, today func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := repo.Dashboard(c.Request.Context(), today())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
