package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
)

// ContentRepository handles database operations for course content
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

// Create inserts a new content row. Teacher existence is checked by the
// service before this call; there is no database-level constraint.
func (r *ContentRepository) Create(ctx context.Context, content *models.Content) error {
	query := `
		INSERT INTO content (teacher_id, class_name, subject, category, study_material, material_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		content.TeacherID, content.ClassName, content.Subject, content.Category,
		content.StudyMaterial, content.MaterialType, content.UploadedAt,
	).Scan(&content.ID)
	if err != nil {
		return fmt.Errorf("error creating content: %w", err)
	}

	return nil
}

// GetByID retrieves a content row by ID
func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	query := `
		SELECT id, teacher_id, class_name, subject, category, study_material, material_type, uploaded_at
		FROM content
		WHERE id = $1
	`

	var content models.Content
	err := r.db.QueryRow(ctx, query, id).Scan(
		&content.ID,
		&content.TeacherID,
		&content.ClassName,
		&content.Subject,
		&content.Category,
		&content.StudyMaterial,
		&content.MaterialType,
		&content.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, fmt.Errorf("error retrieving content: %w", err)
	}

	return &content, nil
}

// GetAll retrieves all content rows
func (r *ContentRepository) GetAll(ctx context.Context) ([]*models.Content, error) {
	query := `
		SELECT id, teacher_id, class_name, subject, category, study_material, material_type, uploaded_at
		FROM content
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	defer rows.Close()

	var items []*models.Content
	for rows.Next() {
		var content models.Content
		if err := rows.Scan(
			&content.ID,
			&content.TeacherID,
			&content.ClassName,
			&content.Subject,
			&content.Category,
			&content.StudyMaterial,
			&content.MaterialType,
			&content.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &content)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetAllWithTeacherNames retrieves all content rows joined with the owning
// teacher's name.
func (r *ContentRepository) GetAllWithTeacherNames(ctx context.Context) ([]*models.ContentWithTeacher, error) {
	query := `
		SELECT c.id, c.teacher_id, c.class_name, c.subject, c.category,
		       c.study_material, c.material_type, c.uploaded_at, t.name
		FROM content c
		JOIN teachers t ON c.teacher_id = t.id
		ORDER BY c.uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing content with teacher names: %w", err)
	}
	defer rows.Close()

	var items []*models.ContentWithTeacher
	for rows.Next() {
		var content models.ContentWithTeacher
		if err := rows.Scan(
			&content.ID,
			&content.TeacherID,
			&content.ClassName,
			&content.Subject,
			&content.Category,
			&content.StudyMaterial,
			&content.MaterialType,
			&content.UploadedAt,
			&content.TeacherName,
		); err != nil {
			return nil, err
		}
		items = append(items, &content)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetDistinctMaterialTypes retrieves the distinct material type tags.
func (r *ContentRepository) GetDistinctMaterialTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT material_type FROM content ORDER BY material_type`)
	if err != nil {
		return nil, fmt.Errorf("error listing material types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var materialType string
		if err := rows.Scan(&materialType); err != nil {
			return nil, err
		}
		types = append(types, materialType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// UpdateSingleField updates one column of a content row. The column name
// is interpolated and MUST already be validated against
// models.ContentUpdatableColumns by the caller.
func (r *ContentRepository) UpdateSingleField(ctx context.Context, id int64, column, value string) error {
	query := fmt.Sprintf("UPDATE content SET %s = $1 WHERE id = $2", column)

	cmdTag, err := r.db.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("error updating content field: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}

// Delete removes a content row by ID
func (r *ContentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting content: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrContentNotFound
	}

	return nil
}
