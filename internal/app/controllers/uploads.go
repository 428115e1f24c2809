package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudo-disha/digital-library/internal/pkg/apperrors"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
	"github.com/sudo-disha/digital-library/internal/pkg/logger"
)

// UploadLimits carries the per-asset-class size caps, in bytes.
type UploadLimits struct {
	MaxImageBytes       int64
	MaxDocumentBytes    int64
	MaxVideoBytes       int64
	MaxSpreadsheetBytes int64
}

// formFile fetches one named multipart file part and enforces its size
// cap. An absent optional part returns (nil, nil).
func formFile(ctx *gin.Context, field string, maxBytes int64, required bool) (*multipart.FileHeader, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			if required {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s file is required", field))
			}
			return nil, nil
		}
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid %s file part", field))
	}

	if fileHeader.Size > maxBytes {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("%s exceeds the %d byte limit", field, maxBytes))
	}

	return fileHeader, nil
}

// discardUpload removes a stored file after a rejected insert so failed
// requests do not leave orphans on disk.
func discardUpload(storage filestorage.FileStorage, class, storedName string) {
	if err := storage.DeleteFile(class, storedName); err != nil {
		logger.Warn().Err(err).Str("file", storedName).Msg("Failed to remove rejected upload")
	}
}
