package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

// AuthController handles account registration. Token issuance lives on
// the OAuth2 server at /oauth/token.
type AuthController struct {
	userService services.UserService
}

func NewAuthController(userService services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

// Register godoc
// @Summary Register an account
// @Description Create a customer account. The email is the username and is stored lowercased.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body controllers.registerRequest true "Account payload"
// @Success 201 {object} controllers.UserResponse
// @Failure 400 {object} models.APIError
// @Router /api/v1/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	user, err := ac.userService.CreateUser(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}
