package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sudo-disha/digital-library/internal/pkg/logger"
)

// LocalStorage stores uploaded files on the local filesystem, one
// subdirectory per asset class. Stored names are freshly generated
// tokens with the original extension preserved, so concurrent uploads
// cannot collide.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores an uploaded file under the given asset class and returns
// the generated stored name (uuid + original extension).
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, class string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := filepath.Join(ls.basePath, class)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create asset class directory")
		return "", fmt.Errorf("failed to create asset class directory: %w", err)
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", storedName).Str("class", class).Msg("File saved")
	return storedName, nil
}

// DeleteFile removes a stored file. A missing file is treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(class, storedName string) error {
	if storedName == "" {
		return nil
	}

	path, err := ls.FullPath(class, storedName)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn().Str("path", path).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath resolves a stored name inside an asset class subtree. Names
// containing path separators or traversal are rejected.
func (ls *LocalStorage) FullPath(class, storedName string) (string, error) {
	if storedName == "" || filepath.Base(storedName) != storedName {
		return "", fmt.Errorf("invalid stored name: %q", storedName)
	}
	return filepath.Join(ls.basePath, class, storedName), nil
}

// BasePath returns the storage root, used for static serving setup.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
