package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/app/services"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
)

// ContentController handles course content operations, including the
// streaming file routes.
type ContentController struct {
	contentService services.ContentService
	storage        filestorage.FileStorage
	limits         UploadLimits
}

// NewContentController creates a new ContentController
func NewContentController(contentService services.ContentService, storage filestorage.FileStorage, limits UploadLimits) *ContentController {
	return &ContentController{
		contentService: contentService,
		storage:        storage,
		limits:         limits,
	}
}

// materialCap picks the upload cap for a declared material type.
func (c *ContentController) materialCap(materialType string) int64 {
	if strings.EqualFold(materialType, "video") {
		return c.limits.MaxVideoBytes
	}
	return c.limits.MaxDocumentBytes
}

// AddContent handles content creation with an uploaded study material file
func (c *ContentController) AddContent(ctx *gin.Context) {
	var req dto.CreateContentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid content data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := formFile(ctx, "studyMaterial", c.materialCap(req.MaterialType), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	storedName, err := c.storage.SaveFile(fileHeader, filestorage.ClassMaterials)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	content, err := c.contentService.AddContent(ctx.Request.Context(), &req, storedName)
	if err != nil {
		discardUpload(c.storage, filestorage.ClassMaterials, storedName)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(content))
}

// GetAllContent retrieves all content rows
func (c *ContentController) GetAllContent(ctx *gin.Context) {
	content, err := c.contentService.GetAllContent(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(content))
}

// GetContentByID retrieves a single content row
func (c *ContentController) GetContentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	content, err := c.contentService.GetContentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(content))
}

// GetContentWithTeacherNames retrieves content joined with teacher names
func (c *ContentController) GetContentWithTeacherNames(ctx *gin.Context) {
	content, err := c.contentService.GetContentWithTeacherNames(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(content))
}

// GetMaterialTypes retrieves the distinct material type tags
func (c *ContentController) GetMaterialTypes(ctx *gin.Context) {
	types, err := c.contentService.GetMaterialTypes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(types))
}

// GetVideo streams a stored video file, honoring Range requests
func (c *ContentController) GetVideo(ctx *gin.Context) {
	c.serveMaterial(ctx, filestorage.ContentTypeVideo)
}

// GetPdf sends a stored pdf file in full
func (c *ContentController) GetPdf(ctx *gin.Context) {
	c.serveMaterial(ctx, filestorage.ContentTypePDF)
}

// GetPpt sends a stored presentation file in full
func (c *ContentController) GetPpt(ctx *gin.Context) {
	c.serveMaterial(ctx, filestorage.ContentTypePPT)
}

func (c *ContentController) serveMaterial(ctx *gin.Context, contentType string) {
	path, err := c.storage.FullPath(filestorage.ClassMaterials, ctx.Param("filename"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file name")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	filestorage.ServeFile(ctx.Writer, ctx.Request, path, contentType)
}

// UpdateContentField updates one allow-listed column by name
func (c *ContentController) UpdateContentField(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid field update")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contentService.UpdateContentField(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Content field updated"))
}

// DeleteContent removes a content row by ID
func (c *ContentController) DeleteContent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.contentService.DeleteContent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Content deleted"))
}
