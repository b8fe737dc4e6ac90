package endpoints

import (
	"github.com/bookvault/bookvault/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// System endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Metadata extraction
		&ExtractEndpoint{},

		// PDF book endpoints
		&UploadPDFBookEndpoint{},
		&ListPDFBooksEndpoint{},
		&GetPDFBookEndpoint{},
		&DeletePDFBookEndpoint{},
		&DownloadPDFBookEndpoint{},
		&DownloadCountEndpoint{},

		// Manual catalog endpoints
		&ListBooksEndpoint{},
		&CreateBookEndpoint{},
		&DeleteBookEndpoint{},

		// Library poster
		&LibraryPosterEndpoint{},
	}
}

// PDFBookCommands returns endpoints for PDF book operations, grouped
// under the "pdf-books" subcommand.
func PDFBookCommands() []api.Endpoint {
	return []api.Endpoint{
		&UploadPDFBookEndpoint{},
		&ListPDFBooksEndpoint{},
		&GetPDFBookEndpoint{},
		&DeletePDFBookEndpoint{},
		&DownloadPDFBookEndpoint{},
		&DownloadCountEndpoint{},
	}
}

// BookCommands returns endpoints for manual catalog operations, grouped
// under the "books" subcommand.
func BookCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListBooksEndpoint{},
		&CreateBookEndpoint{},
		&DeleteBookEndpoint{},
	}
}
