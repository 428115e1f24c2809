package models

// Book defines the book model based on the 'books' table. Poster and
// PDFFile hold stored upload names.
type Book struct {
	ID          int64  `json:"id" db:"id"`
	ISBN        string `json:"isbn" db:"isbn"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
	Department  string `json:"department" db:"department"`
	Poster      string `json:"poster" db:"poster"`
	PDFFile     string `json:"pdf_file" db:"pdf_file"`
}

// BookUpdatableColumns is the fixed allow-list for the single dynamic
// field update. Only these names may ever be interpolated as a column
// name; anything else is rejected before any SQL is built.
var BookUpdatableColumns = map[string]bool{
	"isbn":        true,
	"title":       true,
	"author":      true,
	"description": true,
	"category":    true,
	"department":  true,
	"poster":      true,
	"pdf_file":    true,
}
