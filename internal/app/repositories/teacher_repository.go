package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sudo-disha/digital-library/internal/app/models"
	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/dberrors"
	"github.com/sudo-disha/digital-library/internal/pkg/helpers"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create inserts a new teacher row
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (name, contact_number, department, username, password, profile_photo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.Name, teacher.ContactNumber, teacher.Department,
		teacher.Username, teacher.Password, helpers.GetNullString(teacher.ProfilePhoto),
	).Scan(&teacher.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, name, contact_number, department, username, password, profile_photo
		FROM teachers
		WHERE id = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.ContactNumber,
		&teacher.Department,
		&teacher.Username,
		&teacher.Password,
		&teacher.ProfilePhoto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetByUsername retrieves a teacher by username, used by the login flow.
func (r *TeacherRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	query := `
		SELECT id, name, contact_number, department, username, password, profile_photo
		FROM teachers
		WHERE username = $1
	`

	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, username).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.ContactNumber,
		&teacher.Department,
		&teacher.Username,
		&teacher.Password,
		&teacher.ProfilePhoto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// GetAll retrieves all teachers
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, name, contact_number, department, username, password, profile_photo
		FROM teachers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.Name,
			&teacher.ContactNumber,
			&teacher.Department,
			&teacher.Username,
			&teacher.Password,
			&teacher.ProfilePhoto,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// GetNames retrieves the id and name of every teacher.
func (r *TeacherRepository) GetNames(ctx context.Context) ([]*models.TeacherName, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM teachers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing teacher names: %w", err)
	}
	defer rows.Close()

	var names []*models.TeacherName
	for rows.Next() {
		var name models.TeacherName
		if err := rows.Scan(&name.ID, &name.Name); err != nil {
			return nil, err
		}
		names = append(names, &name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// GetDistinctDepartments retrieves the distinct department names.
func (r *TeacherRepository) GetDistinctDepartments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT department FROM teachers ORDER BY department`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Exists reports whether a teacher row with the given ID exists. Content
// inserts use this as the foreign-key guard.
func (r *TeacherRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE id = $1`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error checking teacher existence: %w", err)
	}
	return count > 0, nil
}

// UpdateFields applies a partial update built by the service.
func (r *TeacherRepository) UpdateFields(ctx context.Context, id int64, set *helpers.UpdateSet) error {
	clause, values := set.Clause(1)
	query := fmt.Sprintf("UPDATE teachers SET %s WHERE id = $%d", clause, set.NextPlaceholder(1))
	values = append(values, id)

	cmdTag, err := r.db.Exec(ctx, query, values...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher by ID
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
