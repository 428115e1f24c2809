package dto

// StudentLoginRequest is the body of the student login route.
type StudentLoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// TeacherLoginRequest is the body of the teacher login route.
type TeacherLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest is the body of the admin login route. Logins are keyed
// by username against the canonical admin schema.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdminRequest is the body of the admin registration route.
type RegisterAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse acknowledges a successful login and carries the signed
// session token plus the fields the frontends show after login.
type LoginResponse struct {
	Message    string `json:"message"`
	Token      string `json:"token"`
	ExpiresIn  int    `json:"expires_in"`
	Role       string `json:"role"`
	ID         int64  `json:"id"`
	Name       string `json:"name,omitempty"`
	Username   string `json:"username,omitempty"`
	Department string `json:"department,omitempty"`
}

// AdminProfileResponse is the payload of the admin profile route.
type AdminProfileResponse struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdateAdminProfileRequest is the multipart form of the profile update.
// The adminProfileImage file part is optional and handled separately.
type UpdateAdminProfileRequest struct {
	Username *string `form:"username"`
	Email    *string `form:"email"`
}
