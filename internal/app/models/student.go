package models

// Student defines the student model based on the 'students' table.
// StudentID is the external student code and is unique within the table.
type Student struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"student_id" db:"student_id"`
	Name      string `json:"name" db:"name"`
	ClassName string `json:"class_name" db:"class_name"`
	Password  string `json:"-" db:"password"` // bcrypt digest, never serialized
}
