package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-orders-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/policy"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// ListOrders lists the caller's own orders
	ListOrders(c *gin.Context)
	// CreateOrder places a new order for the caller
	CreateOrder(c *gin.Context)
	// GetOrder retrieves one of the caller's orders by its ID
	GetOrder(c *gin.Context)
	// UpdateOrder partially updates one of the caller's orders
	UpdateOrder(c *gin.Context)
	// DeleteOrder deletes one of the caller's orders
	DeleteOrder(c *gin.Context)
	// ListAllOrders is the staff-only cross-customer listing
	ListAllOrders(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

func abortWithDomainError(ctx *gin.Context, err error) {
	status, apiErr := models.MapDomainError(err)
	ctx.JSON(status, apiErr)
}

// ListOrders godoc
// @Summary List own orders
// @Description List the authenticated customer's orders, optionally filtered by status codes
// @Tags orders
// @Produce json
// @Param status query string false "Comma-separated status codes (e.g. I,P)"
// @Success 200 {array} controllers.OrderResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/orders [get]
func (oc *orderController) ListOrders(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := oc.service.ListOrders(ctx.Request.Context(), caller, ctx.Query("status"))
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CreateOrder godoc
// @Summary Place an order
// @Description Create a new order for the authenticated customer. Size defaults to S, quantity to 1.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body policy.CreateOrderInput true "Order payload"
// @Success 201 {object} controllers.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (oc *orderController) CreateOrder(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input policy.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := oc.service.CreateOrder(ctx.Request.Context(), caller, input)
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toOrderResponse(order))
}

// GetOrder godoc
// @Summary Get an order
// @Description Retrieve one of the caller's orders. Foreign orders look like missing ones.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} controllers.OrderResponse
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [get]
func (oc *orderController) GetOrder(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	order, err := oc.service.GetOrder(ctx.Request.Context(), caller, ctx.Param("id"))
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Partially update one of the caller's orders. Delivered orders are locked.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param patch body services.OrderPatch true "Fields to update"
// @Success 200 {object} controllers.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [patch]
func (oc *orderController) UpdateOrder(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var patch services.OrderPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	order, err := oc.service.UpdateOrder(ctx.Request.Context(), caller, ctx.Param("id"), patch)
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponse(order))
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete one of the caller's orders
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [delete]
func (oc *orderController) DeleteOrder(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := oc.service.DeleteOrder(ctx.Request.Context(), caller, ctx.Param("id")); err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ListAllOrders godoc
// @Summary List all orders (staff)
// @Description Cross-customer order listing with optional status and customer-email filters
// @Tags orders
// @Produce json
// @Param status query string false "Comma-separated status codes (e.g. I,P)"
// @Param customer query string false "Exact customer email"
// @Success 200 {array} controllers.OrderResponse
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (oc *orderController) ListAllOrders(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	orders, err := oc.service.ListAllOrders(ctx.Request.Context(), caller,
		ctx.Query("status"), ctx.Query("customer"))
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toOrderResponses(orders))
}
