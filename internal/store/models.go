package store

import "time"

// Book is a manually cataloged book without an attached file.
type Book struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre,omitempty"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PDFBook is an uploaded PDF with metadata inferred by the extraction
// pipeline. FilePath is server-local and never serialized.
type PDFBook struct {
	ID               string    `json:"id"`
	User             string    `json:"user"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category"`
	Genre            string    `json:"genre,omitempty"`
	PageCount        string    `json:"page_count"`
	Language         string    `json:"language"`
	PublishedYear    string    `json:"published_year,omitempty"`
	Keywords         string    `json:"keywords,omitempty"`
	CoverImage       string    `json:"cover_image,omitempty"`
	FileName         string    `json:"file_name"`
	OriginalName     string    `json:"original_name"`
	FilePath         string    `json:"-"`
	FileSize         int64     `json:"file_size"`
	ExtractionStatus string    `json:"extraction_status"`
	Downloads        int       `json:"downloads"`
	CreatedAt        time.Time `json:"created_at"`
}
