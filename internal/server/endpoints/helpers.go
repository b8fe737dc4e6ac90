package endpoints

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/bookvault/bookvault/internal/svcctx"
)

// requestUser resolves the catalog owner for a request from the "user"
// query or form value, falling back to the configured default.
func requestUser(r *http.Request) string {
	if u := r.FormValue("user"); u != "" {
		return u
	}
	if u := r.URL.Query().Get("user"); u != "" {
		return u
	}
	if cm := svcctx.ConfigFrom(r.Context()); cm != nil {
		return cm.Get().Storage.DefaultUser
	}
	return "default"
}

// maxUploadBytes returns the configured upload ceiling, with a 50MB
// fallback when config is absent.
func maxUploadBytes(r *http.Request) int64 {
	if cm := svcctx.ConfigFrom(r.Context()); cm != nil {
		return cm.Get().MaxUploadBytes()
	}
	return 50 << 20
}

// pdfFormFile parses the multipart form and returns the single "file"
// part, enforcing the PDF extension and size limit.
func pdfFormFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	limit := maxUploadBytes(r)
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return nil, nil, false
	}

	file, fh, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return nil, nil, false
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		file.Close()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", fh.Filename))
		return nil, nil, false
	}
	if fh.Size > limit {
		file.Close()
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds upload limit")
		return nil, nil, false
	}
	return file, fh, true
}

// saveUpload copies src to destPath, creating the file.
func saveUpload(src io.Reader, destPath string) error {
	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(destPath)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return dst.Close()
}
