package filestorage

import (
	"mime/multipart"
)

// Asset class subdirectories under the storage root. Each upload route
// stores into exactly one of these, and the serve routes resolve names
// against the same subtree.
const (
	ClassPhotos    = "photos"
	ClassPosters   = "posters"
	ClassBooks     = "books"
	ClassMaterials = "materials"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under the given asset class and
	// returns the generated stored name.
	SaveFile(fileHeader *multipart.FileHeader, class string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an error.
	DeleteFile(class, storedName string) error

	// FullPath returns the filesystem path for a stored name, or an error
	// if the name escapes the storage subtree.
	FullPath(class, storedName string) (string, error)
}
