package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/metadata"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// ListBooksEndpoint handles GET /api/books.
type ListBooksEndpoint struct{}

var _ api.Endpoint = (*ListBooksEndpoint)(nil)

func (e *ListBooksEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/books", e.handler
}

func (e *ListBooksEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List manually cataloged books
//	@Tags			books
//	@Produce		json
//	@Param			user	query		string	false	"Catalog owner"
//	@Success		200		{array}		store.Book
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/books [get]
func (e *ListBooksEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	books, err := st.ListBooks(r.Context(), requestUser(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list books: %v", err))
		return
	}
	if books == nil {
		books = []store.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (e *ListBooksEndpoint) Command(getServerURL func() string) *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manually cataloged books",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var books []store.Book
			if err := client.Get(cmd.Context(), "/api/books?user="+user, &books); err != nil {
				return err
			}
			return api.Output(books)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Catalog owner")
	return cmd
}

// CreateBookRequest is the body for POST /api/books.
type CreateBookRequest struct {
	User        string `json:"user"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
}

// CreateBookEndpoint handles POST /api/books.
type CreateBookEndpoint struct{}

var _ api.Endpoint = (*CreateBookEndpoint)(nil)

func (e *CreateBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/books", e.handler
}

func (e *CreateBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Add a book to the catalog manually
//	@Description	Title is required; a missing genre is inferred from title and description
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			book	body		CreateBookRequest	true	"Book to add"
//	@Success		201		{object}	store.Book
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/books [post]
func (e *CreateBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	user := req.User
	if user == "" {
		user = requestUser(r)
	}
	genre := req.Genre
	if genre == "" {
		genre = metadata.InferGenre(req.Title + " " + req.Description)
	}

	book := store.Book{
		User:        user,
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Genre:       genre,
		Description: req.Description,
	}

	st := svcctx.StoreFrom(r.Context())
	if err := st.CreateBook(r.Context(), &book); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create book: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

func (e *CreateBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var user, author, genre, description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the catalog manually",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			req := CreateBookRequest{
				User:        user,
				Title:       args[0],
				Author:      author,
				Genre:       genre,
				Description: description,
			}
			var book store.Book
			if err := client.Post(cmd.Context(), "/api/books", req, &book); err != nil {
				return err
			}
			return api.Output(book)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Catalog owner")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre (inferred if empty)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	return cmd
}

// DeleteBookEndpoint handles DELETE /api/books/{id}.
type DeleteBookEndpoint struct{}

var _ api.Endpoint = (*DeleteBookEndpoint)(nil)

func (e *DeleteBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/books/{id}", e.handler
}

func (e *DeleteBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a manually cataloged book
//	@Tags			books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/books/{id} [delete]
func (e *DeleteBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	id := r.PathValue("id")

	err := st.DeleteBook(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete book: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (e *DeleteBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a manually cataloged book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/books/"+args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
