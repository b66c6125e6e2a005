package http

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-store/internal/application/dto"
	"github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/infrastructure/report"
)

// InventoryHandler expone el Store por HTTP.
type InventoryHandler struct {
	store     *inventory.Store
	pdf       *report.PDFReporter
	location  string
	threshold int
}

// NewInventoryHandler construye el handler. location es el destino de load/save; threshold el umbral por defecto de low-stock.
func NewInventoryHandler(store *inventory.Store, pdf *report.PDFReporter, location string, threshold int) *InventoryHandler {
	return &InventoryHandler{store: store, pdf: pdf, location: location, threshold: threshold}
}

// List GET /api/inventory/items
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items := h.store.Items()
	return c.JSON(dto.StockListResponse{Total: len(items), Items: items})
}

// Quantity GET /api/inventory/quantity?item=
func (h *InventoryHandler) Quantity(c *fiber.Ctx) error {
	item := c.Query("item")
	if strings.TrimSpace(item) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro item requerido"})
	}
	return c.JSON(dto.ItemQuantityResponse{Item: item, Quantity: h.store.GetQuantity(item)})
}

// LowStock GET /api/inventory/low-stock?threshold=
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold := h.threshold
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold debe ser entero"})
		}
		threshold = n
	}
	return c.JSON(dto.LowStockResponse{Threshold: threshold, Items: h.store.CheckLowItems(threshold)})
}

// Add POST /api/inventory/add
func (h *InventoryHandler) Add(c *fiber.Ctx) error {
	in, ok := h.parseChange(c)
	if !ok {
		return nil
	}
	if err := h.store.Add(in.Item, *in.Quantity); err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(dto.ItemQuantityResponse{Item: in.Item, Quantity: h.store.GetQuantity(in.Item)})
}

// Remove POST /api/inventory/remove
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	in, ok := h.parseChange(c)
	if !ok {
		return nil
	}
	if err := h.store.Remove(in.Item, *in.Quantity); err != nil {
		return writeStoreError(c, err)
	}
	return c.JSON(dto.ItemQuantityResponse{Item: in.Item, Quantity: h.store.GetQuantity(in.Item)})
}

// Load POST /api/inventory/load. Un fallo de carga no es un error HTTP: el inventario queda vacío.
func (h *InventoryHandler) Load(c *fiber.Ctx) error {
	if err := h.store.Load(c.Context(), h.location); err != nil {
		return c.JSON(dto.PersistenceResponse{
			Status:   "reset",
			Reason:   domain.LoadKindOf(err).String(),
			Location: h.location,
		})
	}
	return c.JSON(dto.PersistenceResponse{Status: "loaded", Location: h.location, Items: len(h.store.Items())})
}

// Save POST /api/inventory/save
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	if err := h.store.Save(c.Context(), h.location); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAVE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.PersistenceResponse{Status: "saved", Location: h.location, Items: len(h.store.Items())})
}

// Report GET /api/inventory/report.pdf
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.pdf.Generate(c.Context(), h.store.Items(), h.threshold, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventory.pdf"`)
	return c.Send(pdf)
}

// parseChange decodifica el body; si falla ya escribió la respuesta 400 y devuelve ok=false.
func (h *InventoryHandler) parseChange(c *fiber.Ctx) (dto.StockChangeRequest, bool) {
	var in dto.StockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return in, false
	}
	if in.Quantity == nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity requerido"})
		return in, false
	}
	return in, true
}

func writeStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
