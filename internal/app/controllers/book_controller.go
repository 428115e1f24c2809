package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/app/services"
	"github.com/sudo-disha/digital-library/internal/middleware"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
)

// BookController handles book-related operations
type BookController struct {
	bookService services.BookService
	storage     filestorage.FileStorage
	limits      UploadLimits
}

// NewBookController creates a new BookController
func NewBookController(bookService services.BookService, storage filestorage.FileStorage, limits UploadLimits) *BookController {
	return &BookController{
		bookService: bookService,
		storage:     storage,
		limits:      limits,
	}
}

// AddBook handles book creation with a poster image and a pdf file
func (c *BookController) AddBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	posterHeader, err := formFile(ctx, "bookPoster", c.limits.MaxImageBytes, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pdfHeader, err := formFile(ctx, "bookPdf", c.limits.MaxDocumentBytes, true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	poster, err := c.storage.SaveFile(posterHeader, filestorage.ClassPosters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pdfFile, err := c.storage.SaveFile(pdfHeader, filestorage.ClassBooks)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	book, err := c.bookService.AddBook(ctx.Request.Context(), &req, poster, pdfFile)
	if err != nil {
		discardUpload(c.storage, filestorage.ClassPosters, poster)
		discardUpload(c.storage, filestorage.ClassBooks, pdfFile)
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(book))
}

// GetAllBooks retrieves all books
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.bookService.GetAllBooks(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(books))
}

// GetBookByID retrieves a book by ID
func (c *BookController) GetBookByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	book, err := c.bookService.GetBookByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(book))
}

// GetBooksByDepartment retrieves books filtered by department
func (c *BookController) GetBooksByDepartment(ctx *gin.Context) {
	books, err := c.bookService.GetBooksByDepartment(ctx.Request.Context(), ctx.Param("department"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(books))
}

// GetBooksByCategory retrieves books filtered by category
func (c *BookController) GetBooksByCategory(ctx *gin.Context) {
	books, err := c.bookService.GetBooksByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(books))
}

// GetDepartments retrieves the distinct book departments
func (c *BookController) GetDepartments(ctx *gin.Context) {
	departments, err := c.bookService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// GetCategories retrieves the distinct book categories
func (c *BookController) GetCategories(ctx *gin.Context) {
	categories, err := c.bookService.GetCategories(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// UpdateBook applies a partial update, with optional replacement files
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid book data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var poster, pdfFile *string

	posterHeader, err := formFile(ctx, "bookPoster", c.limits.MaxImageBytes, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if posterHeader != nil {
		storedName, err := c.storage.SaveFile(posterHeader, filestorage.ClassPosters)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		poster = &storedName
	}

	pdfHeader, err := formFile(ctx, "bookPdf", c.limits.MaxDocumentBytes, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if pdfHeader != nil {
		storedName, err := c.storage.SaveFile(pdfHeader, filestorage.ClassBooks)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		pdfFile = &storedName
	}

	if err := c.bookService.UpdateBook(ctx.Request.Context(), id, &req, poster, pdfFile); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Book updated"))
}

// UpdateBookField updates one allow-listed column by name
func (c *BookController) UpdateBookField(ctx *gin.Context) {
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

	if err := c.bookService.UpdateBookField(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Book field updated"))
}

// DeleteBook removes a book by ID
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.bookService.DeleteBook(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Book deleted"))
}
