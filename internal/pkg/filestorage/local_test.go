package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadHeader builds a multipart.FileHeader the way a handler would
// receive it.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFileGeneratesFreshName(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := uploadHeader(t, "photo.png", []byte("image-bytes"))

	storedName, err := storage.SaveFile(header, ClassPhotos)
	require.NoError(t, err)

	assert.NotEqual(t, "photo.png", storedName)
	assert.True(t, strings.HasSuffix(storedName, ".png"))

	path, err := storage.FullPath(ClassPhotos, storedName)
	require.NoError(t, err)
	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), saved)
}

func TestSaveFileDistinctNamesForSameUpload(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.SaveFile(uploadHeader(t, "a.pdf", []byte("one")), ClassBooks)
	require.NoError(t, err)
	second, err := storage.SaveFile(uploadHeader(t, "a.pdf", []byte("two")), ClassBooks)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFullPathRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.FullPath(ClassMaterials, "../../etc/passwd")
	assert.Error(t, err)

	_, err = storage.FullPath(ClassMaterials, "nested/evil.mp4")
	assert.Error(t, err)

	_, err = storage.FullPath(ClassMaterials, "")
	assert.Error(t, err)
}

func TestDeleteFileIdempotent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	storedName, err := storage.SaveFile(uploadHeader(t, "clip.mp4", []byte("video")), ClassMaterials)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(ClassMaterials, storedName))

	path, err := storage.FullPath(ClassMaterials, storedName)
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, storage.DeleteFile(ClassMaterials, storedName))
}

func TestDeleteFileBlankName(t *testing.T) {
	storage, err := NewLocalStorage(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile(ClassPhotos, ""))
}
