package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	TeacherRepository *TeacherRepository
	AdminRepository   *AdminRepository
	BookRepository    *BookRepository
	ContentRepository *ContentRepository
}

// NewRepositories initializes all repositories over one shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		TeacherRepository: NewTeacherRepository(db),
		AdminRepository:   NewAdminRepository(db),
		BookRepository:    NewBookRepository(db),
		ContentRepository: NewContentRepository(db),
	}
}
