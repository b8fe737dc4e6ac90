package metadata

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrUnreadable marks a PDF whose structure could not be parsed. The
// pipeline treats it as a signal to fall back to filename-derived
// metadata rather than failing the upload.
var ErrUnreadable = errors.New("pdf: unreadable document")

// Reader reads the raw information dictionary from a PDF on disk.
// Implementations must be safe for concurrent use.
type Reader interface {
	ReadInfo(path string) (RawPDFMetadata, error)
}

// FileReader reads PDF metadata from the local filesystem.
type FileReader struct{}

var _ Reader = FileReader{}

// ReadInfo opens the PDF at path and returns its information dictionary
// and page count. Structural parse failures return ErrUnreadable; the
// underlying parser panics on some malformed files, and those panics are
// converted to the same error.
func (FileReader) ReadInfo(path string) (raw RawPDFMetadata, err error) {
	f, err := os.Open(path)
	if err != nil {
		return RawPDFMetadata{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return RawPDFMetadata{}, fmt.Errorf("stat pdf: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			raw = RawPDFMetadata{}
			err = fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	doc, err := pdf.NewReader(f, st.Size())
	if err != nil {
		return RawPDFMetadata{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	info := doc.Trailer().Key("Info")
	raw = RawPDFMetadata{
		Title:        infoString(info, "Title"),
		Author:       infoString(info, "Author"),
		Subject:      infoString(info, "Subject"),
		Keywords:     infoString(info, "Keywords"),
		Creator:      infoString(info, "Creator"),
		Producer:     infoString(info, "Producer"),
		CreationYear: creationYear(infoString(info, "CreationDate")),
		PageCount:    doc.NumPage(),
	}

	// pdfcpu counts pages more reliably on linearized and damaged files.
	if n, cntErr := countPages(path); cntErr == nil && n > 0 {
		raw.PageCount = n
	}
	return raw, nil
}

func countPages(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	return api.PageCount(f, conf)
}

func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}

// creationYear extracts the year from a PDF date string such as
// "D:20190704120000Z". Returns 0 when absent or malformed.
func creationYear(date string) int {
	date = strings.TrimPrefix(date, "D:")
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year < 1000 || year > 2999 {
		return 0
	}
	return year
}
