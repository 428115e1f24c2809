package filestorage

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		size      int64
		wantStart int64
		wantEnd   int64
		wantErr   bool
	}{
		{name: "explicit span", header: "bytes=0-99", size: 1000, wantStart: 0, wantEnd: 99},
		{name: "open end defaults to last byte", header: "bytes=500-", size: 1000, wantStart: 500, wantEnd: 999},
		{name: "end clamped to size", header: "bytes=900-5000", size: 1000, wantStart: 900, wantEnd: 999},
		{name: "single byte", header: "bytes=0-0", size: 1000, wantStart: 0, wantEnd: 0},
		{name: "missing prefix", header: "0-99", size: 1000, wantErr: true},
		{name: "missing start", header: "bytes=-500", size: 1000, wantErr: true},
		{name: "start past end of file", header: "bytes=1000-", size: 1000, wantErr: true},
		{name: "end before start", header: "bytes=50-10", size: 1000, wantErr: true},
		{name: "multi span", header: "bytes=0-1,5-9", size: 1000, wantErr: true},
		{name: "garbage", header: "bytes=abc-def", size: 1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseRange(tt.header, tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video.mp4")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestServeFileFullBody(t *testing.T) {
	content := bytes.Repeat([]byte("x"), 1000)
	path := writeTempFile(t, content)

	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	rec := httptest.NewRecorder()

	ServeFile(rec, req, path, ContentTypeVideo)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentTypeVideo, rec.Header().Get("Content-Type"))
	assert.Equal(t, "1000", rec.Header().Get("Content-Length"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestServeFilePartialContent(t *testing.T) {
	content := make([]byte, 1000)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := writeTempFile(t, content)

	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	req.Header.Set("Range", "bytes=0-99")
	rec := httptest.NewRecorder()

	ServeFile(rec, req, path, ContentTypeVideo)

	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 0-99/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Equal(t, "100", rec.Header().Get("Content-Length"))
	assert.Equal(t, content[:100], rec.Body.Bytes())
}

func TestServeFileTailSpan(t *testing.T) {
	content := bytes.Repeat([]byte("abcdefghij"), 100)
	path := writeTempFile(t, content)

	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	req.Header.Set("Range", "bytes=950-")
	rec := httptest.NewRecorder()

	ServeFile(rec, req, path, ContentTypeVideo)

	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 950-999/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, content[950:], rec.Body.Bytes())
}

func TestServeFileMalformedRange(t *testing.T) {
	path := writeTempFile(t, bytes.Repeat([]byte("x"), 100))

	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	req.Header.Set("Range", "bytes=oops")
	rec := httptest.NewRecorder()

	ServeFile(rec, req, path, ContentTypeVideo)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeFileMissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	rec := httptest.NewRecorder()

	ServeFile(rec, req, filepath.Join(t.TempDir(), "nope.mp4"), ContentTypeVideo)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
