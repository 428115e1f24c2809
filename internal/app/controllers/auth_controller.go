package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/app/services"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
)

// AuthController handles login and admin account operations
type AuthController struct {
	authService services.AuthService
	storage     filestorage.FileStorage
	limits      UploadLimits
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, storage filestorage.FileStorage, limits UploadLimits) *AuthController {
	return &AuthController{
		authService: authService,
		storage:     storage,
		limits:      limits,
	}
}

// StudentLogin authenticates a student by student code and password
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.StudentLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// TeacherLogin authenticates a teacher by username and password
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.TeacherLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AdminLogin authenticates an admin by username and password
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.AdminLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RegisterAdmin creates a new admin account
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.authService.RegisterAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(admin))
}

// GetProfile returns the authenticated admin's profile
func (c *AuthController) GetProfile(ctx *gin.Context) {
	adminID, ok := middleware.SubjectID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.authService.GetAdminProfile(ctx.Request.Context(), adminID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile applies a partial update to the authenticated admin's
// profile, with an optional replacement image
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	adminID, ok := middleware.SubjectID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateAdminProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := formFile(ctx, "adminProfileImage", c.limits.MaxImageBytes, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var profileImage *string
	if fileHeader != nil {
		storedName, err := c.storage.SaveFile(fileHeader, filestorage.ClassPhotos)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		profileImage = &storedName
	}

	if err := c.authService.UpdateAdminProfile(ctx.Request.Context(), adminID, &req, profileImage); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated"))
}
