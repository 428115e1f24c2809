package models

import "time"

// Content defines the course content model based on the 'content' table.
// TeacherID must reference an existing teacher at insert time; the guard
// is a count query in the service, not a database constraint. UploadedAt
// is caller-supplied.
type Content struct {
	ID            int64     `json:"id" db:"id"`
	TeacherID     int64     `json:"teacher_id" db:"teacher_id"`
	ClassName     string    `json:"class_name" db:"class_name"`
	Subject       string    `json:"subject" db:"subject"`
	Category      string    `json:"category" db:"category"`
	StudyMaterial string    `json:"study_material" db:"study_material"`
	MaterialType  string    `json:"material_type" db:"material_type"`
	UploadedAt    time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// ContentWithTeacher is the joined projection including the teacher name.
type ContentWithTeacher struct {
	Content
	TeacherName string `json:"teacher_name"`
}

// ContentUpdatableColumns is the fixed allow-list for the single dynamic
// field update on content rows.
var ContentUpdatableColumns = map[string]bool{
	"teacher_id":    true,
	"class_name":    true,
	"subject":       true,
	"category":      true,
	"material_type": true,
}
