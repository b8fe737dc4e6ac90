package endpoints

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/metadata"
	"github.com/bookvault/bookvault/internal/svcctx"
)

// ExtractEndpoint handles POST /api/extract. It runs the metadata
// pipeline against an uploaded PDF without storing anything, so clients
// can preview what an upload would catalog as.
type ExtractEndpoint struct{}

var _ api.Endpoint = (*ExtractEndpoint)(nil)

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract", e.handler
}

func (e *ExtractEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract metadata from a PDF
//	@Description	Runs the metadata pipeline against an uploaded PDF without cataloging it
//	@Tags			extract
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Success		200		{object}	metadata.Extraction
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/extract [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	file, fh, ok := pdfFormFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	defer r.MultipartForm.RemoveAll()

	extractor := svcctx.ExtractorFrom(r.Context())
	if extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "extractor not initialized")
		return
	}

	tmp, err := os.CreateTemp("", "bookvault-extract-*.pdf")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create temp file: %v", err))
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := saveUpload(file, tmpPath); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, extractor.Extract(tmpPath, fh.Filename))
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.pdf>",
		Short: "Extract metadata from a PDF without cataloging it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp metadata.Extraction
			err := client.UploadFile(cmd.Context(), "/api/extract", "file",
				filepath.Clean(args[0]), nil, &resp)
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
