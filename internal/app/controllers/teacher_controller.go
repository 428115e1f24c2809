package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/app/services"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
	storage        filestorage.FileStorage
	limits         UploadLimits
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, storage filestorage.FileStorage, limits UploadLimits) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		storage:        storage,
		limits:         limits,
	}
}

// AddTeacher handles teacher creation with an optional profile photo
func (c *TeacherController) AddTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := formFile(ctx, "profilePhoto", c.limits.MaxImageBytes, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var profilePhoto *string
	if fileHeader != nil {
		storedName, err := c.storage.SaveFile(fileHeader, filestorage.ClassPhotos)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		profilePhoto = &storedName
	}

	teacher, err := c.teacherService.AddTeacher(ctx.Request.Context(), &req, profilePhoto)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(teacher))
}

// ImportTeachers handles bulk creation from an uploaded xlsx workbook
func (c *TeacherController) ImportTeachers(ctx *gin.Context) {
	fileHeader, err := formFile(ctx, "excelFile", c.limits.MaxSpreadsheetBytes, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.teacherService.ImportTeachers(ctx.Request.Context(), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetAllTeachers retrieves all teachers
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teachers))
}

// GetTeacherByID retrieves a single teacher
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}

// GetTeacherNames retrieves id and name pairs for selection lists
func (c *TeacherController) GetTeacherNames(ctx *gin.Context) {
	names, err := c.teacherService.GetTeacherNames(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(names))
}

// GetDepartments retrieves the distinct teacher departments
func (c *TeacherController) GetDepartments(ctx *gin.Context) {
	departments, err := c.teacherService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// UpdateTeacher applies a partial update to a teacher
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teacher updated"))
}

// DeleteTeacher removes a teacher by ID
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teacher deleted"))
}
