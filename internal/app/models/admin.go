package models

// Admin defines the canonical admin model: one schema for both the login
// and registration flows, keyed by username with a unique email alongside.
type Admin struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	Email        string  `json:"email" db:"email"`
	Password     string  `json:"-" db:"password"`
	Role         string  `json:"role" db:"role"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
}
