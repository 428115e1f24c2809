package services

import (
	"context"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/app/models/dto"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

// bookStore is the persistence surface the book service depends on.
type bookStore interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetAll(ctx context.Context) ([]*models.Book, error)
	GetByDepartment(ctx context.Context, department string) ([]*models.Book, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Book, error)
	GetDistinctDepartments(ctx context.Context) ([]string, error)
	GetDistinctCategories(ctx context.Context) ([]string, error)
	UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error
	UpdateSingleField(ctx context.Context, id int64, column, value string) error
	Delete(ctx context.Context, id int64) error
}

// BookService defines the interface for book-related operations
type BookService interface {
	AddBook(ctx context.Context, req *dto.CreateBookRequest, poster, pdfFile string) (*models.Book, error)
	GetBookByID(ctx context.Context, id int64) (*models.Book, error)
	GetAllBooks(ctx context.Context) ([]*models.Book, error)
	GetBooksByDepartment(ctx context.Context, department string) ([]*models.Book, error)
	GetBooksByCategory(ctx context.Context, category string) ([]*models.Book, error)
	GetDepartments(ctx context.Context) ([]string, error)
	GetCategories(ctx context.Context) ([]string, error)
	UpdateBook(ctx context.Context, id int64, req *dto.UpdateBookRequest, poster, pdfFile *string) error
	UpdateBookField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) error
	DeleteBook(ctx context.Context, id int64) error
}

type bookServiceImpl struct {
	bookRepo bookStore
}

// NewBookService creates a new book service instance
func NewBookService(bookRepo bookStore) BookService {
	return &bookServiceImpl{
		bookRepo: bookRepo,
	}
}

// AddBook inserts a book row. poster and pdfFile are the stored upload
// names of the two required file parts.
func (s *bookServiceImpl) AddBook(ctx context.Context, req *dto.CreateBookRequest, poster, pdfFile string) (*models.Book, error) {
	if poster == "" || pdfFile == "" {
		return nil, apperrors.NewValidationError("bookposter and bookpdf files are required")
	}

	book := &models.Book{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Department:  req.Department,
		Poster:      poster,
		PDFFile:     pdfFile,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBookByID retrieves a book by ID
func (s *bookServiceImpl) GetBookByID(ctx context.Context, id int64) (*models.Book, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid book ID")
	}
	return s.bookRepo.GetByID(ctx, id)
}

// GetAllBooks retrieves all books
func (s *bookServiceImpl) GetAllBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.GetAll(ctx)
}

// GetBooksByDepartment retrieves books filtered by department
func (s *bookServiceImpl) GetBooksByDepartment(ctx context.Context, department string) ([]*models.Book, error) {
	if department == "" {
		return nil, apperrors.NewValidationError("department cannot be empty")
	}
	return s.bookRepo.GetByDepartment(ctx, department)
}

// GetBooksByCategory retrieves books filtered by category
func (s *bookServiceImpl) GetBooksByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	if category == "" {
		return nil, apperrors.NewValidationError("category cannot be empty")
	}
	return s.bookRepo.GetByCategory(ctx, category)
}

// GetDepartments retrieves the distinct departments across all books.
func (s *bookServiceImpl) GetDepartments(ctx context.Context) ([]string, error) {
	return s.bookRepo.GetDistinctDepartments(ctx)
}

// GetCategories retrieves the distinct categories across all books.
func (s *bookServiceImpl) GetCategories(ctx context.Context) ([]string, error) {
	return s.bookRepo.GetDistinctCategories(ctx)
}

// UpdateBook applies a partial multi-field update. Replacement files, when
// uploaded, arrive as stored names in poster / pdfFile.
func (s *bookServiceImpl) UpdateBook(ctx context.Context, id int64, req *dto.UpdateBookRequest, poster, pdfFile *string) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid book ID")
	}
	if req.Empty() && poster == nil && pdfFile == nil {
		return apperrors.ErrNoFieldsToUpdate
	}

	set := &helpers.UpdateSet{}
	if req.ISBN != nil {
		set.Add("isbn", *req.ISBN)
	}
	if req.Title != nil {
		set.Add("title", *req.Title)
	}
	if req.Author != nil {
		set.Add("author", *req.Author)
	}
	if req.Description != nil {
		set.Add("description", *req.Description)
	}
	if req.Category != nil {
		set.Add("category", *req.Category)
	}
	if req.Department != nil {
		set.Add("department", *req.Department)
	}
	if poster != nil {
		set.Add("poster", *poster)
	}
	if pdfFile != nil {
		set.Add("pdf_file", *pdfFile)
	}

	return s.bookRepo.UpdateFields(ctx, id, set)
}

// UpdateBookField updates one column chosen by name. The name must be in
// the fixed allow-list; anything else is rejected before any SQL runs.
func (s *bookServiceImpl) UpdateBookField(ctx context.Context, id int64, req *dto.UpdateFieldRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid book ID")
	}
	if !models.BookUpdatableColumns[req.Field] {
		return apperrors.ErrInvalidField
	}

	return s.bookRepo.UpdateSingleField(ctx, id, req.Field, req.Value)
}

// DeleteBook removes a book by ID
func (s *bookServiceImpl) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid book ID")
	}
	return s.bookRepo.Delete(ctx, id)
}
