package endpoints

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// UploadResponse is returned after a successful PDF upload.
type UploadResponse struct {
	Book             store.PDFBook `json:"book"`
	ExtractionStatus string        `json:"extraction_status"`
}

// UploadPDFBookEndpoint handles POST /api/pdf-books/upload.
type UploadPDFBookEndpoint struct{}

var _ api.Endpoint = (*UploadPDFBookEndpoint)(nil)

func (e *UploadPDFBookEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/pdf-books/upload", e.handler
}

func (e *UploadPDFBookEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Upload a PDF book
//	@Description	Stores the PDF, runs metadata extraction, and catalogs the book
//	@Tags			pdf-books
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Param			user	formData	string	false	"Catalog owner"
//	@Param			title	formData	string	false	"Title override"
//	@Param			author	formData	string	false	"Author override"
//	@Success		201		{object}	UploadResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/pdf-books/upload [post]
func (e *UploadPDFBookEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	file, fh, ok := pdfFormFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	defer r.MultipartForm.RemoveAll()

	st := svcctx.StoreFrom(r.Context())
	extractor := svcctx.ExtractorFrom(r.Context())
	homeDir := svcctx.HomeFrom(r.Context())
	if st == nil || extractor == nil || homeDir == nil {
		writeError(w, http.StatusServiceUnavailable, "server not fully initialized")
		return
	}
	logger := svcctx.LoggerFrom(r.Context())

	fileName := uuid.NewString() + ".pdf"
	destPath := homeDir.UploadPath(fileName)
	if err := saveUpload(file, destPath); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ext := extractor.Extract(destPath, fh.Filename)

	book := store.PDFBook{
		User:             requestUser(r),
		Title:            ext.Metadata.Title,
		Author:           ext.Metadata.Author,
		Description:      ext.Metadata.Description,
		Category:         string(ext.Metadata.Category),
		Genre:            ext.Metadata.Genre,
		PageCount:        ext.Metadata.PageCount,
		Language:         ext.Metadata.Language,
		PublishedYear:    ext.Metadata.PublishedYear,
		Keywords:         ext.Metadata.Keywords,
		FileName:         fileName,
		OriginalName:     fh.Filename,
		FilePath:         destPath,
		FileSize:         fh.Size,
		ExtractionStatus: string(ext.Status),
	}

	// Caller-supplied fields win over extracted ones.
	if title := r.FormValue("title"); title != "" {
		book.Title = title
	}
	if author := r.FormValue("author"); author != "" {
		book.Author = author
	}

	if err := st.CreatePDFBook(r.Context(), &book); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to catalog book: %v", err))
		return
	}

	if logger != nil {
		logger.Info("pdf book uploaded",
			"id", book.ID, "title", book.Title, "user", book.User,
			"extraction", book.ExtractionStatus)
	}

	writeJSON(w, http.StatusCreated, UploadResponse{
		Book:             book,
		ExtractionStatus: book.ExtractionStatus,
	})
}

func (e *UploadPDFBookEndpoint) Command(getServerURL func() string) *cobra.Command {
	var user, title, author string
	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF book to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			fields := map[string]string{}
			if user != "" {
				fields["user"] = user
			}
			if title != "" {
				fields["title"] = title
			}
			if author != "" {
				fields["author"] = author
			}

			var resp UploadResponse
			err := client.UploadFile(cmd.Context(), "/api/pdf-books/upload", "file",
				filepath.Clean(args[0]), fields, &resp)
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Catalog owner")
	cmd.Flags().StringVar(&title, "title", "", "Title override")
	cmd.Flags().StringVar(&author, "author", "", "Author override")
	return cmd
}
