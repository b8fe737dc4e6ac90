// Package metadata implements the PDF metadata inference pipeline:
// title and author normalization, genre and category classification,
// and auto-description synthesis. All classifiers are pure functions
// over immutable keyword tables and are safe for concurrent use.
package metadata

// Category classifies the provenance of an uploaded book.
type Category string

const (
	CategoryPersonal      Category = "personal"
	CategoryPublicDomain  Category = "public-domain"
	CategoryEducational   Category = "educational"
	CategorySelfPublished Category = "self-published"
	CategoryResearch      Category = "research"
)

// Categories lists all valid categories in cascade priority order.
var Categories = []Category{
	CategoryResearch,
	CategoryEducational,
	CategorySelfPublished,
	CategoryPublicDomain,
	CategoryPersonal,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// RawPDFMetadata is the document information dictionary of a PDF as read
// from the file, before any cleaning. Absent entries are empty strings.
type RawPDFMetadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationYear int
	PageCount    int
}

// Cleaned is the normalized metadata record produced by the pipeline.
// It is a plain value owned by the caller; the pipeline holds no reference
// to it after Extract returns.
type Cleaned struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Genre         string   `json:"genre"`
	PageCount     string   `json:"page_count"`
	Language      string   `json:"language"`
	PublishedYear string   `json:"published_year"`
	Keywords      string   `json:"keywords"`
	CoverImage    string   `json:"cover_image,omitempty"`
}

// Status indicates how an extraction was produced.
type Status string

const (
	// StatusOK means the PDF's embedded metadata was read successfully.
	StatusOK Status = "ok"

	// StatusFallback means the PDF could not be parsed and the record was
	// derived from the filename alone.
	StatusFallback Status = "fallback"
)

// Extraction is the result of running the pipeline against one upload.
type Extraction struct {
	Metadata Cleaned `json:"metadata"`
	Status   Status  `json:"status"`
}

// Placeholders substituted when cleaning yields nothing usable.
const (
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"

	// DefaultLanguage is assumed when the PDF carries no language hint.
	DefaultLanguage = "English"
)
