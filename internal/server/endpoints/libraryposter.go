package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/poster"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// LibraryPosterEndpoint handles GET /api/library/poster. It renders a
// one-page PDF overview of the user's whole catalog.
type LibraryPosterEndpoint struct{}

var _ api.Endpoint = (*LibraryPosterEndpoint)(nil)

func (e *LibraryPosterEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/library/poster", e.handler
}

func (e *LibraryPosterEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Render the library poster
//	@Description	Returns a PDF poster summarizing the user's catalog
//	@Tags			library
//	@Produce		application/pdf
//	@Param			user	query	string	false	"Catalog owner"
//	@Success		200
//	@Failure		500	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/api/library/poster [get]
func (e *LibraryPosterEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if cm := svcctx.ConfigFrom(r.Context()); cm != nil && !cm.Get().Poster.Enabled {
		writeError(w, http.StatusServiceUnavailable, "poster generation is disabled")
		return
	}

	st := svcctx.StoreFrom(r.Context())
	composer := svcctx.ComposerFrom(r.Context())
	if st == nil || composer == nil {
		writeError(w, http.StatusServiceUnavailable, "server not fully initialized")
		return
	}

	user := requestUser(r)
	books, err := st.ListBooks(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list books: %v", err))
		return
	}
	pdfBooks, err := st.ListPDFBooks(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list pdf books: %v", err))
		return
	}

	out, err := composer.Compose(poster.Collect(books, pdfBooks))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render poster: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="library-poster.pdf"`)
	w.Write(out)
}

func (e *LibraryPosterEndpoint) Command(getServerURL func() string) *cobra.Command {
	var user, out string
	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Render the library poster to a PDF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			client := api.NewClient(getServerURL())
			if err := client.DownloadTo(cmd.Context(), "/api/library/poster?user="+user, f); err != nil {
				os.Remove(out)
				return err
			}
			fmt.Printf("Saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Catalog owner")
	cmd.Flags().StringVarP(&out, "out", "f", "library-poster.pdf", "Output file")
	return cmd
}
