package models

// Teacher defines the teacher model based on the 'teachers' table.
// Username is the login key and is unique within the table.
type Teacher struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	ContactNumber string  `json:"contact_number" db:"contact_number"`
	Department    string  `json:"department" db:"department"`
	Username      string  `json:"username" db:"username"`
	Password      string  `json:"-" db:"password"`
	ProfilePhoto  *string `json:"profile_photo,omitempty" db:"profile_photo"` // stored file name, optional
}

// TeacherName is the projection returned by the names listing.
type TeacherName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
