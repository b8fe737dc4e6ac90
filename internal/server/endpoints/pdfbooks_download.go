package endpoints

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/poster"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// DownloadPDFBookEndpoint handles GET /api/pdf-books/{id}/download.
// With ?poster=true the user's library poster is prepended to the file.
type DownloadPDFBookEndpoint struct{}

var _ api.Endpoint = (*DownloadPDFBookEndpoint)(nil)

func (e *DownloadPDFBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/pdf-books/{id}/download", e.handler
}

func (e *DownloadPDFBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download a PDF book
//	@Description	Streams the stored PDF; with poster=true the library poster is prepended
//	@Tags			pdf-books
//	@Produce		application/pdf
//	@Param			id		path	string	true	"Book ID"
//	@Param			poster	query	bool	false	"Prepend the library poster"
//	@Success		200
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/pdf-books/{id}/download [get]
func (e *DownloadPDFBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	if _, err := os.Stat(book.FilePath); err != nil {
		writeError(w, http.StatusNotFound, "book file missing")
		return
	}

	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", book.OriginalName))
	w.Header().Set("Content-Type", "application/pdf")

	if r.URL.Query().Get("poster") == "true" && posterEnabled(r) {
		if err := e.serveWithPoster(w, r, book); err == nil {
			return
		} else if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
			logger.Warn("poster prepend failed, serving plain file", "id", book.ID, "error", err)
		}
	}

	http.ServeFile(w, r, book.FilePath)
}

func posterEnabled(r *http.Request) bool {
	cm := svcctx.ConfigFrom(r.Context())
	if cm == nil {
		return true
	}
	cfg := cm.Get().Poster
	return cfg.Enabled && cfg.AttachOnDownload
}

// serveWithPoster merges into a buffer first. The merge can fail after
// producing bytes, and partial output must never reach the client.
func (e *DownloadPDFBookEndpoint) serveWithPoster(w http.ResponseWriter, r *http.Request, book store.PDFBook) error {
	st := svcctx.StoreFrom(r.Context())
	composer := svcctx.ComposerFrom(r.Context())
	if composer == nil {
		return errors.New("composer not initialized")
	}

	books, err := st.ListBooks(r.Context(), book.User)
	if err != nil {
		return err
	}
	pdfBooks, err := st.ListPDFBooks(r.Context(), book.User)
	if err != nil {
		return err
	}

	posterPDF, err := composer.Compose(poster.Collect(books, pdfBooks))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := poster.Prepend(posterPDF, book.FilePath, &buf); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func (e *DownloadPDFBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var out string
	var withPoster bool
	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a PDF book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = args[0] + ".pdf"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			path := "/api/pdf-books/" + args[0] + "/download"
			if withPoster {
				path += "?poster=true"
			}
			client := api.NewClient(getServerURL())
			if err := client.DownloadTo(cmd.Context(), path, f); err != nil {
				os.Remove(out)
				return err
			}
			fmt.Printf("Saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "f", "", "Output file (default: <id>.pdf)")
	cmd.Flags().BoolVar(&withPoster, "poster", false, "Prepend the library poster")
	return cmd
}

// DownloadCountResponse reports the updated download counter.
type DownloadCountResponse struct {
	ID        string `json:"id"`
	Downloads int    `json:"downloads"`
}

// DownloadCountEndpoint handles POST /api/pdf-books/{id}/download-count.
type DownloadCountEndpoint struct{}

var _ api.Endpoint = (*DownloadCountEndpoint)(nil)

func (e *DownloadCountEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/pdf-books/{id}/download-count", e.handler
}

func (e *DownloadCountEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Increment a book's download counter
//	@Tags			pdf-books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	DownloadCountResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/pdf-books/{id}/download-count [post]
func (e *DownloadCountEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	st := svcctx.StoreFrom(r.Context())
	id := r.PathValue("id")

	downloads, err := st.IncrementDownloads(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to update counter: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, DownloadCountResponse{ID: id, Downloads: downloads})
}

func (e *DownloadCountEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "download-count <id>",
		Short: "Increment a book's download counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp DownloadCountResponse
			err := client.Post(cmd.Context(), "/api/pdf-books/"+args[0]+"/download-count", nil, &resp)
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
