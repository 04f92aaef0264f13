// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/middleware"
)

// AuthController handles registration and login for all three actor roles
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// RegisterWarden handles warden account creation
// @Summary Register a new warden
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterWardenRequest true "Warden registration information"
// @Success 201 {object} dto.SuccessResponse "Warden registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Warden id, email or contact already registered"
// @Router /createWarden [post]
func (c *AuthController) RegisterWarden(ctx *gin.Context) {
	var req dto.RegisterWardenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterWarden(ctx.Request.Context(), req); err != nil {
		c.logger.Warn().Err(err).Str("warden_id", req.WardenID).Msg("Warden registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Warden registered successfully"})
}

// RegisterStudent handles student account creation and hostel admission
// @Summary Register a new student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration information"
// @Success 201 {object} dto.SuccessResponse "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate identity or hostel full"
// @Router /createStudent [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterStudent(ctx.Request.Context(), req); err != nil {
		c.logger.Warn().Err(err).Str("roll_no", req.RollNo).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Student registered successfully"})
}

// RegisterSupportAdmin handles support department admin creation
// @Summary Register a support department admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSupportAdminRequest true "Support admin registration information"
// @Success 201 {object} dto.SuccessResponse "Support admin registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or department name"
// @Failure 409 {object} dto.ErrorResponse "Department or email already registered"
// @Router /createSupportAdmin [post]
func (c *AuthController) RegisterSupportAdmin(ctx *gin.Context) {
	var req dto.RegisterSupportAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.authService.RegisterSupportAdmin(ctx.Request.Context(), req); err != nil {
		c.logger.Warn().Err(err).Str("d_name", req.DName).Msg("Support admin registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Support admin registered successfully"})
}

// LoginWarden handles warden login
// @Summary Log in as a warden
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginWardenRequest true "Warden credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /loginWarden [post]
func (c *AuthController) LoginWarden(ctx *gin.Context) {
	var req dto.LoginWardenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginWarden(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Str("email", req.Email).Msg("Warden login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// LoginStudent handles student login
// @Summary Log in as a student
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginStudentRequest true "Student credentials"
// @Success 200 {object} dto.LoginResponse "Login successful with identity echo"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /loginStudent [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginStudent(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Str("email", req.Email).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// LoginSupportAdmin handles support department admin login
// @Summary Log in as a support department admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginSupportAdminRequest true "Support admin credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /loginSupportAdmin [post]
func (c *AuthController) LoginSupportAdmin(ctx *gin.Context) {
	var req dto.LoginSupportAdminRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.LoginSupportAdmin(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Str("email", req.Email).Msg("Support admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
