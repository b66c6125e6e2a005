package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/infrastructure/report"
)

// Roles que pueden modificar el inventario cuando la autenticación está activa.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store             *inventory.Store
	PDF               *report.PDFReporter
	Location          string
	LowStockThreshold int
	JWTSecret         string // vacío = mutaciones sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	inv := app.Group("/api/inventory")
	h := NewInventoryHandler(deps.Store, deps.PDF, deps.Location, deps.LowStockThreshold)

	// Consultas (público)
	inv.Get("/items", h.List)
	inv.Get("/quantity", h.Quantity)
	inv.Get("/low-stock", h.LowStock)
	inv.Get("/report.pdf", h.Report)

	// Mutaciones y persistencia
	var guard []fiber.Handler
	if deps.JWTSecret != "" {
		guard = append(guard, AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin, RoleBodeguero))
	}
	protect := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, guard...), handler)
	}
	inv.Post("/add", protect(h.Add)...)
	inv.Post("/remove", protect(h.Remove)...)
	inv.Post("/load", protect(h.Load)...)
	inv.Post("/save", protect(h.Save)...)
}
