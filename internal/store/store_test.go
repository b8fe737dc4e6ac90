package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBookCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	b := Book{User: "alice", Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction"}
	if err := s.CreateBook(ctx, &b); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if b.ID == "" {
		t.Fatal("CreateBook did not assign an id")
	}
	if b.CreatedAt.IsZero() {
		t.Fatal("CreateBook did not assign a creation time")
	}

	got, err := s.GetBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBook: %v", err)
	}
	if got.Title != "Dune" || got.User != "alice" {
		t.Errorf("GetBook = %+v", got)
	}

	books, err := s.ListBooks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("ListBooks returned %d books, want 1", len(books))
	}

	if books, _ := s.ListBooks(ctx, "bob"); len(books) != 0 {
		t.Errorf("ListBooks for other user returned %d books, want 0", len(books))
	}

	if err := s.DeleteBook(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	if _, err := s.GetBook(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetBook after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.DeleteBook(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteBook twice: err = %v, want ErrNotFound", err)
	}
}

func TestListBooksOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	older := Book{User: "alice", Title: "First", Author: "A", CreatedAt: time.Now().Add(-time.Hour).UTC()}
	newer := Book{User: "alice", Title: "Second", Author: "B", CreatedAt: time.Now().UTC()}
	for _, b := range []*Book{&older, &newer} {
		if err := s.CreateBook(ctx, b); err != nil {
			t.Fatalf("CreateBook: %v", err)
		}
	}

	books, err := s.ListBooks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if len(books) != 2 || books[0].Title != "Second" {
		t.Errorf("expected newest first, got %+v", books)
	}
}

func TestPDFBookCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	b := PDFBook{
		User:             "alice",
		Title:            "Clean Code",
		Author:           "Robert Martin",
		Category:         "educational",
		Genre:            "Technology",
		PageCount:        "464",
		Language:         "English",
		FileName:         "abc123.pdf",
		OriginalName:     "clean-code.pdf",
		FilePath:         "/tmp/uploads/abc123.pdf",
		FileSize:         1024,
		ExtractionStatus: "ok",
	}
	if err := s.CreatePDFBook(ctx, &b); err != nil {
		t.Fatalf("CreatePDFBook: %v", err)
	}
	if b.ID == "" {
		t.Fatal("CreatePDFBook did not assign an id")
	}

	got, err := s.GetPDFBook(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetPDFBook: %v", err)
	}
	if got.Title != "Clean Code" || got.FilePath != "/tmp/uploads/abc123.pdf" {
		t.Errorf("GetPDFBook = %+v", got)
	}
	if got.Downloads != 0 {
		t.Errorf("new pdf book has %d downloads, want 0", got.Downloads)
	}

	books, err := s.ListPDFBooks(ctx, "alice")
	if err != nil {
		t.Fatalf("ListPDFBooks: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("ListPDFBooks returned %d books, want 1", len(books))
	}

	if err := s.DeletePDFBook(ctx, b.ID); err != nil {
		t.Fatalf("DeletePDFBook: %v", err)
	}
	if _, err := s.GetPDFBook(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPDFBook after delete: err = %v, want ErrNotFound", err)
	}
}

func TestIncrementDownloads(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	b := PDFBook{User: "alice", Title: "T", Author: "A",
		FileName: "f.pdf", OriginalName: "f.pdf", FilePath: "/tmp/f.pdf"}
	if err := s.CreatePDFBook(ctx, &b); err != nil {
		t.Fatalf("CreatePDFBook: %v", err)
	}

	for want := 1; want <= 3; want++ {
		got, err := s.IncrementDownloads(ctx, b.ID)
		if err != nil {
			t.Fatalf("IncrementDownloads: %v", err)
		}
		if got != want {
			t.Errorf("IncrementDownloads = %d, want %d", got, want)
		}
	}

	if _, err := s.IncrementDownloads(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("IncrementDownloads missing id: err = %v, want ErrNotFound", err)
	}
}
