// Package docs provides Swagger documentation for the API.
package docs

// @title Dandi Dashboard API
// @version 1.0
// @description API key management and validation for the Dandi dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@dandi.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
