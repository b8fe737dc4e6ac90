// Package store persists the book catalog in SQLite. One database file
// holds both manually entered books and uploaded PDF books.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id          TEXT PRIMARY KEY,
	user        TEXT NOT NULL,
	title       TEXT NOT NULL,
	author      TEXT NOT NULL,
	genre       TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	cover_image TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_books_user ON books(user);

CREATE TABLE IF NOT EXISTS pdf_books (
	id                TEXT PRIMARY KEY,
	user              TEXT NOT NULL,
	title             TEXT NOT NULL,
	author            TEXT NOT NULL,
	description       TEXT NOT NULL DEFAULT '',
	category          TEXT NOT NULL DEFAULT 'personal',
	genre             TEXT NOT NULL DEFAULT '',
	page_count        TEXT NOT NULL DEFAULT '0',
	language          TEXT NOT NULL DEFAULT 'English',
	published_year    TEXT NOT NULL DEFAULT '',
	keywords          TEXT NOT NULL DEFAULT '',
	cover_image       TEXT NOT NULL DEFAULT '',
	file_name         TEXT NOT NULL,
	original_name     TEXT NOT NULL,
	file_path         TEXT NOT NULL,
	file_size         INTEGER NOT NULL DEFAULT 0,
	extraction_status TEXT NOT NULL DEFAULT 'ok',
	downloads         INTEGER NOT NULL DEFAULT 0,
	created_at        TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pdf_books_user ON pdf_books(user);
`

// Store wraps the SQLite database. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog database at path. WAL mode
// keeps concurrent reads from blocking writes.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateBook inserts a manually entered book, assigning its ID and
// creation time when unset.
func (s *Store) CreateBook(ctx context.Context, b *Book) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (id, user, title, author, genre, description, cover_image, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.User, b.Title, b.Author, b.Genre, b.Description, b.CoverImage, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// ListBooks returns all of a user's manually entered books, newest first.
func (s *Store) ListBooks(ctx context.Context, user string) ([]Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user, title, author, genre, description, cover_image, created_at
		 FROM books WHERE user = ? ORDER BY created_at DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.User, &b.Title, &b.Author, &b.Genre,
			&b.Description, &b.CoverImage, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetBook returns one book by id.
func (s *Store) GetBook(ctx context.Context, id string) (Book, error) {
	var b Book
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user, title, author, genre, description, cover_image, created_at
		 FROM books WHERE id = ?`, id).
		Scan(&b.ID, &b.User, &b.Title, &b.Author, &b.Genre,
			&b.Description, &b.CoverImage, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// DeleteBook removes one book by id.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreatePDFBook inserts an uploaded PDF book, assigning its ID and
// creation time when unset.
func (s *Store) CreatePDFBook(ctx context.Context, b *PDFBook) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pdf_books (id, user, title, author, description, category, genre,
			page_count, language, published_year, keywords, cover_image,
			file_name, original_name, file_path, file_size, extraction_status,
			downloads, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.User, b.Title, b.Author, b.Description, b.Category, b.Genre,
		b.PageCount, b.Language, b.PublishedYear, b.Keywords, b.CoverImage,
		b.FileName, b.OriginalName, b.FilePath, b.FileSize, b.ExtractionStatus,
		b.Downloads, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pdf book: %w", err)
	}
	return nil
}

const pdfBookColumns = `id, user, title, author, description, category, genre,
	page_count, language, published_year, keywords, cover_image,
	file_name, original_name, file_path, file_size, extraction_status,
	downloads, created_at`

func scanPDFBook(row interface{ Scan(...any) error }) (PDFBook, error) {
	var b PDFBook
	err := row.Scan(&b.ID, &b.User, &b.Title, &b.Author, &b.Description,
		&b.Category, &b.Genre, &b.PageCount, &b.Language, &b.PublishedYear,
		&b.Keywords, &b.CoverImage, &b.FileName, &b.OriginalName, &b.FilePath,
		&b.FileSize, &b.ExtractionStatus, &b.Downloads, &b.CreatedAt)
	return b, err
}

// ListPDFBooks returns all of a user's uploaded PDF books, newest first.
func (s *Store) ListPDFBooks(ctx context.Context, user string) ([]PDFBook, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+pdfBookColumns+` FROM pdf_books WHERE user = ? ORDER BY created_at DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("list pdf books: %w", err)
	}
	defer rows.Close()

	var books []PDFBook
	for rows.Next() {
		b, err := scanPDFBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pdf book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// GetPDFBook returns one uploaded PDF book by id.
func (s *Store) GetPDFBook(ctx context.Context, id string) (PDFBook, error) {
	b, err := scanPDFBook(s.db.QueryRowContext(ctx,
		`SELECT `+pdfBookColumns+` FROM pdf_books WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return PDFBook{}, ErrNotFound
	}
	if err != nil {
		return PDFBook{}, fmt.Errorf("get pdf book: %w", err)
	}
	return b, nil
}

// DeletePDFBook removes one uploaded PDF book by id.
func (s *Store) DeletePDFBook(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pdf_books WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete pdf book: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementDownloads bumps the download counter and returns the new count.
func (s *Store) IncrementDownloads(ctx context.Context, id string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE pdf_books SET downloads = downloads + 1 WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("increment downloads: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrNotFound
	}

	var downloads int
	err = s.db.QueryRowContext(ctx,
		`SELECT downloads FROM pdf_books WHERE id = ?`, id).Scan(&downloads)
	if err != nil {
		return 0, fmt.Errorf("read downloads: %w", err)
	}
	return downloads, nil
}
