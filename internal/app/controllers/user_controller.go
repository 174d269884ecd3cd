package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursecat/api/internal/app/models/dto"
	"github.com/coursecat/api/internal/app/services"
	"github.com/coursecat/api/internal/middleware"
	"github.com/coursecat/api/internal/pkg/logger"
)

// UserController handles user registration and login
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new user with a hashed password
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User credentials"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or user already exists"
// @Router /users/ [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("login", user.Login).Msg("User registered")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserResponse{
		ID:     user.ID,
		Login:  user.Login,
		RoleID: user.RoleID,
	}))
}

// Login handles credential verification
// @Summary Log a user in
// @Description Verifies the login/password pair. No session or token is issued.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Credentials verified"
// @Failure 400 {object} dto.ErrorResponse "Incorrect username or password"
// @Router /users/login/ [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.Login(ctx.Request.Context(), &req)
	if err != nil {
		logger.Warn().Err(err).Str("login", req.Login).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("login", user.Login).Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{
		Message: "Login successful",
	}))
}
