package filestorage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRange is returned for Range headers that do not parse or do
// not describe a satisfiable span of the file.
var ErrMalformedRange = errors.New("malformed range header")

// Content types for the served asset kinds.
const (
	ContentTypeVideo = "video/mp4"
	ContentTypePDF   = "application/pdf"
	ContentTypePPT   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// ParseRange parses a single-span "bytes=<start>-<end>" header against a
// file of the given size. The start position is required; the end position
// is optional and defaults to size-1. Anything malformed or unsatisfiable
// returns ErrMalformedRange rather than silently serving the whole file.
func ParseRange(header string, size int64) (start, end int64, err error) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return 0, 0, ErrMalformedRange
	}

	spec := strings.TrimPrefix(header, prefix)
	if strings.Contains(spec, ",") {
		// Multi-span requests are not supported for video seeking.
		return 0, 0, ErrMalformedRange
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return 0, 0, ErrMalformedRange
	}

	start, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 || start >= size {
		return 0, 0, ErrMalformedRange
	}

	end = size - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, ErrMalformedRange
		}
		if end > size-1 {
			end = size - 1
		}
	}

	return start, end, nil
}

// ServeFile streams a file honoring single-span byte-range requests.
// Without a Range header the whole file is sent with a 200; with one, the
// requested span is sent with a 206 and a Content-Range header. A missing
// file yields 404 and a malformed range 400.
func ServeFile(w http.ResponseWriter, r *http.Request, path, contentType string) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	size := stat.Size()

	rangeHeader := r.Header.Get("Range")
	if rangeHeader == "" {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_, _ = io.Copy(w, file)
		}
		return
	}

	start, end, err := ParseRange(rangeHeader, size)
	if err != nil {
		http.Error(w, "malformed range", http.StatusBadRequest)
		return
	}

	if _, err := file.Seek(start, io.SeekStart); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	chunkSize := end - start + 1
	w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	w.Header().Set("Accept-Ranges", "bytes")
	w.Header().Set("Content-Length", strconv.FormatInt(chunkSize, 10))
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusPartialContent)
	if r.Method != http.MethodHead {
		_, _ = io.CopyN(w, file, chunkSize)
	}
}
