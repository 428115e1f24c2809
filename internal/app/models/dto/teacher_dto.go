package dto

// CreateTeacherRequest is the multipart form of the add-teacher route. The
// optional profilePhoto file part is handled separately by the controller.
type CreateTeacherRequest struct {
	Name          string `form:"name" binding:"required"`
	ContactNumber string `form:"contactNumber" binding:"required"`
	Department    string `form:"department" binding:"required"`
	Username      string `form:"username" binding:"required"`
	Password      string `form:"password" binding:"required"`
}

// UpdateTeacherRequest is the body of the partial teacher update.
type UpdateTeacherRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Department    *string `json:"department"`
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	ProfilePhoto  *string `json:"profile_photo"`
}

// Empty reports whether no fields were supplied.
func (r *UpdateTeacherRequest) Empty() bool {
	return r.Name == nil && r.ContactNumber == nil && r.Department == nil &&
		r.Username == nil && r.Password == nil && r.ProfilePhoto == nil
}
