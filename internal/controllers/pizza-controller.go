package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

// PizzaController handles HTTP requests related to the catalog
type PizzaController interface {
	// GetAllPizzas retrieves all catalog entries
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a catalog entry by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new catalog entry
	CreatePizza(c *gin.Context)
	// UpdatePizza partially updates a catalog entry
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a catalog entry by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

type createPizzaRequest struct {
	Flavour string          `json:"flavour"`
	Prices  models.PriceMap `json:"prices"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get the full catalog of pizza flavours with per-size prices
// @Tags pizzas
// @Produce json
// @Success 200 {array} controllers.PizzaResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/pizzas [get]
func (pc *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := pc.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, toPizzaResponses(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single catalog entry by its ID
// @Tags pizzas
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} controllers.PizzaResponse
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/pizzas/{id} [get]
func (pc *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizza, err := pc.service.GetPizzaByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPizzaResponse(pizza))
}

// CreatePizza godoc
// @Summary Create a pizza
// @Description Create a new flavour with its per-size price map. Flavours are unique.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body controllers.createPizzaRequest true "Pizza payload"
// @Success 201 {object} controllers.PizzaResponse
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/pizzas [post]
func (pc *pizzaController) CreatePizza(ctx *gin.Context) {
	var req createPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := pc.service.CreatePizza(ctx.Request.Context(), req.Flavour, req.Prices)
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toPizzaResponse(pizza))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Partially update a catalog entry
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Param patch body services.PizzaPatch true "Fields to update"
// @Success 200 {object} controllers.PizzaResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/pizzas/{id} [patch]
func (pc *pizzaController) UpdatePizza(ctx *gin.Context) {
	var patch services.PizzaPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := pc.service.UpdatePizza(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toPizzaResponse(pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a catalog entry by its ID
// @Tags pizzas
// @Param id path string true "Pizza ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/pizzas/{id} [delete]
func (pc *pizzaController) DeletePizza(ctx *gin.Context) {
	if err := pc.service.DeletePizza(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
