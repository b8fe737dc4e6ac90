package poster

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Prepend writes the book at bookPath to w with the poster PDF inserted
// as its leading pages.
func Prepend(posterPDF []byte, bookPath string, w io.Writer) error {
	f, err := os.Open(bookPath)
	if err != nil {
		return fmt.Errorf("open book: %w", err)
	}
	defer f.Close()

	readers := []io.ReadSeeker{bytes.NewReader(posterPDF), f}
	conf := model.NewDefaultConfiguration()
	if err := api.MergeRaw(readers, w, false, conf); err != nil {
		return fmt.Errorf("merge poster: %w", err)
	}
	return nil
}
