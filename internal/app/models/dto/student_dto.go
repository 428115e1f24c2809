package dto

// CreateStudentRequest is the body of the add-student route.
type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	ClassName string `json:"class_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UpdateStudentRequest is the body of the partial student update. Only
// non-nil fields are written; an all-nil body is rejected.
type UpdateStudentRequest struct {
	StudentID *string `json:"student_id"`
	Name      *string `json:"name"`
	ClassName *string `json:"class_name"`
	Password  *string `json:"password"`
}

// Empty reports whether no fields were supplied.
func (r *UpdateStudentRequest) Empty() bool {
	return r.StudentID == nil && r.Name == nil && r.ClassName == nil && r.Password == nil
}
