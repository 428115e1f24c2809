package dto

// CreateBookRequest is the multipart form of the add-book route. The
// bookposter and bookpdf file parts are handled separately.
type CreateBookRequest struct {
	ISBN        string `form:"isbn" binding:"required"`
	Title       string `form:"title" binding:"required"`
	Author      string `form:"author" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
	Department  string `form:"department" binding:"required"`
}

// UpdateBookRequest is the multipart form of the partial book update.
// Replacement poster/pdf files are optional parts next to these fields.
type UpdateBookRequest struct {
	ISBN        *string `form:"isbn"`
	Title       *string `form:"title"`
	Author      *string `form:"author"`
	Description *string `form:"description"`
	Category    *string `form:"category"`
	Department  *string `form:"department"`
}

// Empty reports whether no text fields were supplied.
func (r *UpdateBookRequest) Empty() bool {
	return r.ISBN == nil && r.Title == nil && r.Author == nil &&
		r.Description == nil && r.Category == nil && r.Department == nil
}

// UpdateFieldRequest is the body of the single dynamic field update used
// by both books and content. Field is validated against a fixed
// allow-list before any SQL is built.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}
