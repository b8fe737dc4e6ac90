package metadata

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// Extractor runs the full metadata pipeline against uploaded PDFs.
// The zero value is not usable; construct with NewExtractor.
type Extractor struct {
	reader Reader
	logger *slog.Logger
}

// NewExtractor returns an Extractor backed by the given Reader. A nil
// logger falls back to slog.Default().
func NewExtractor(reader Reader, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{reader: reader, logger: logger}
}

// Extract reads the PDF at path and produces a cleaned metadata record.
// A file whose structure cannot be parsed never fails the upload: the
// record is derived from originalName alone and the extraction is
// marked StatusFallback.
func (e *Extractor) Extract(path, originalName string) Extraction {
	raw, err := e.reader.ReadInfo(path)
	if err != nil {
		if !errors.Is(err, ErrUnreadable) {
			e.logger.Warn("pdf metadata read failed", "path", path, "error", err)
		} else {
			e.logger.Info("unreadable pdf, using filename fallback", "file", originalName)
		}
		return Extraction{
			Metadata: e.fromFilename(originalName),
			Status:   StatusFallback,
		}
	}
	return Extraction{
		Metadata: e.fromRaw(raw, originalName),
		Status:   StatusOK,
	}
}

// fromRaw builds the cleaned record from an information dictionary,
// falling back to the filename for a missing or junk title.
func (e *Extractor) fromRaw(raw RawPDFMetadata, originalName string) Cleaned {
	title := CleanTitle(raw.Title)
	if title == "" {
		title = CleanTitle(filenameText(originalName))
	}
	if title == "" {
		title = UnknownTitle
	}

	author := CleanAuthor(raw.Author)
	if author == "" {
		author = UnknownAuthor
	}

	blob := strings.Join([]string{
		raw.Title, raw.Author, raw.Subject, raw.Keywords,
		raw.Creator, raw.Producer, originalName,
	}, " ")

	c := Cleaned{
		Title:     title,
		Author:    author,
		Category:  InferCategory(blob, raw.Creator+" "+raw.Producer),
		Genre:     InferGenre(blob),
		PageCount: strconv.Itoa(raw.PageCount),
		Language:  DefaultLanguage,
		Keywords:  strings.TrimSpace(raw.Keywords),
	}
	if raw.CreationYear > 0 {
		c.PublishedYear = strconv.Itoa(raw.CreationYear)
	}
	c.Description = SynthesizeDescription(c, raw.Subject)
	return c
}

// fromFilename builds the best record possible from the filename alone.
func (e *Extractor) fromFilename(originalName string) Cleaned {
	text := filenameText(originalName)

	title := CleanTitle(text)
	if title == "" {
		title = UnknownTitle
	}

	c := Cleaned{
		Title:     title,
		Author:    UnknownAuthor,
		Category:  InferCategory(text, ""),
		Genre:     InferGenre(text),
		PageCount: "0",
		Language:  DefaultLanguage,
	}
	c.Description = SynthesizeDescription(c, "")
	return c
}

// filenameText strips the extension and word separators from a filename
// so it can feed the same cleaners as embedded metadata.
func filenameText(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = dashRuns.ReplaceAllString(base, " ")
	return strings.TrimSpace(base)
}
