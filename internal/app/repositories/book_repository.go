package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

// BookRepository handles database operations for books
type BookRepository struct {
	db *pgxpool.Pool
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

const bookColumns = `id, isbn, title, author, description, category, department, poster, pdf_file`

func scanBook(row pgx.Row) (*models.Book, error) {
	var book models.Book
	err := row.Scan(
		&book.ID,
		&book.ISBN,
		&book.Title,
		&book.Author,
		&book.Description,
		&book.Category,
		&book.Department,
		&book.Poster,
		&book.PDFFile,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book row
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (isbn, title, author, description, category, department, poster, pdf_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		book.ISBN, book.Title, book.Author, book.Description,
		book.Category, book.Department, book.Poster, book.PDFFile,
	).Scan(&book.ID)
	if err != nil {
		return fmt.Errorf("error creating book: %w", err)
	}

	return nil
}

// GetByID retrieves a book by ID
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)

	book, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error retrieving book: %w", err)
	}

	return book, nil
}

func (r *BookRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]*models.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// GetAll retrieves all books
func (r *BookRepository) GetAll(ctx context.Context) ([]*models.Book, error) {
	return r.queryBooks(ctx, fmt.Sprintf(`SELECT %s FROM books ORDER BY id`, bookColumns))
}

// GetByDepartment retrieves books belonging to one department
func (r *BookRepository) GetByDepartment(ctx context.Context, department string) ([]*models.Book, error) {
	return r.queryBooks(ctx,
		fmt.Sprintf(`SELECT %s FROM books WHERE department = $1 ORDER BY id`, bookColumns), department)
}

// GetByCategory retrieves books belonging to one category
func (r *BookRepository) GetByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	return r.queryBooks(ctx,
		fmt.Sprintf(`SELECT %s FROM books WHERE category = $1 ORDER BY id`, bookColumns), category)
}

// GetDistinctDepartments retrieves the distinct department names.
func (r *BookRepository) GetDistinctDepartments(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT department FROM books ORDER BY department`)
}

// GetDistinctCategories retrieves the distinct category names.
func (r *BookRepository) GetDistinctCategories(ctx context.Context) ([]string, error) {
	return r.queryStrings(ctx, `SELECT DISTINCT category FROM books ORDER BY category`)
}

func (r *BookRepository) queryStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// UpdateFields applies a partial update built by the service.
func (r *BookRepository) UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error {
	clause, values := set.Clause(1)
	query := fmt.Sprintf("UPDATE books SET %s WHERE id = $%d", clause, set.NextPlaceholder(1))
	values = append(values, id)

	cmdTag, err := r.db.Exec(ctx, query, values...)
	if err != nil {
		return fmt.Errorf("error updating book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

// UpdateSingleField updates one column of a book row. The column name is
// interpolated and MUST already be validated against
// models.BookUpdatableColumns by the caller.
func (r *BookRepository) UpdateSingleField(ctx context.Context, id int64, column, value string) error {
	query := fmt.Sprintf("UPDATE books SET %s = $1 WHERE id = $2", column)

	cmdTag, err := r.db.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("error updating book field: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

// Delete removes a book by ID
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}
