package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// ListPDFBooksEndpoint handles GET /api/pdf-books.
type ListPDFBooksEndpoint struct{}

var _ api.Endpoint = (*ListPDFBooksEndpoint)(nil)

func (e *ListPDFBooksEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pdf-books", e.handler
}

func (e *ListPDFBooksEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List uploaded PDF books
//	@Description	Returns all of a user's uploaded PDF books, newest first
//	@Tags			pdf-books
//	@Produce		json
//	@Param			user	query		string	false	"Catalog owner"
//	@Success		200		{array}		store.PDFBook
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/pdf-books [get]
func (e *ListPDFBooksEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	books, err := st.ListPDFBooks(r.Context(), requestUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list books: %v", err))
		return
	}
	if books == nil {
		books = []store.PDFBook{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (e *ListPDFBooksEndpoint) Command(getServerURL func() string) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List uploaded PDF books",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var books []store.PDFBook
			if err := client.Get(cmd.Context(), "/api/pdf-books?user="+user, &books); err != nil {
				return err
			}
			return api.Output(books)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Catalog owner")
	return cmd
}

// GetPDFBookEndpoint handles GET /api/pdf-books/{id}.
type GetPDFBookEndpoint struct{}

var _ api.Endpoint = (*GetPDFBookEndpoint)(nil)

func (e *GetPDFBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pdf-books/{id}", e.handler
}

func (e *GetPDFBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get a PDF book
//	@Tags			pdf-books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	store.PDFBook
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/pdf-books/{id} [get]
func (e *GetPDFBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	book, err := st.GetPDFBook(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get book: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (e *GetPDFBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a PDF book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var book store.PDFBook
			if err := client.Get(cmd.Context(), "/api/pdf-books/"+args[0], &book); err != nil {
				return err
			}
			return api.Output(book)
		},
	}
}

// DeletePDFBookEndpoint handles DELETE /api/pdf-books/{id}.
type DeletePDFBookEndpoint struct{}

var _ api.Endpoint = (*DeletePDFBookEndpoint)(nil)

func (e *DeletePDFBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/pdf-books/{id}", e.handler
}

func (e *DeletePDFBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a PDF book
//	@Description	Removes the catalog record and the stored PDF file
//	@Tags			pdf-books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/pdf-books/{id} [delete]
func (e *DeletePDFBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	id := r.PathValue("id")

	book, err := st.GetPDFBook(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to get book: %v", err))
		return
	}

	if err := st.DeletePDFBook(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete book: %v", err))
		return
	}

	// The file is best-effort; a missing file must not fail the delete.
	if book.FilePath != "" {
		if err := os.Remove(book.FilePath); err != nil && !os.IsNotExist(err) {
			if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
				logger.Warn("failed to remove book file", "path", book.FilePath, "error", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (e *DeletePDFBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a PDF book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/pdf-books/"+args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
