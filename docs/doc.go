// Package docs provides generated OpenAPI documentation.
//
// Bookvault API
//
//	@title			Bookvault API
//	@version		1.0
//	@description	Personal book library API with PDF uploads, automatic metadata extraction, and poster rendering.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/bookvault/bookvault
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/bookvault/serve.go -o ./swagger --parseDependency --parseInternal
