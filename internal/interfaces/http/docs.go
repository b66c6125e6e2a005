package http

import (
	"fmt"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// Docs monta Swagger UI en /docs a partir del swagger.json en specPath.
func Docs(app *fiber.App, specPath, title string) error {
	if _, err := os.Stat(specPath); err != nil {
		return fmt.Errorf("swagger: %w", err)
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    title,
	}))
	return nil
}
