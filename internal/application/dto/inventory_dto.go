package dto

import "github.com/jhoicas/inventario-store/internal/domain/entity"

// StockChangeRequest body para POST /api/inventory/add y /api/inventory/remove.
// Quantity es puntero para distinguir "ausente" de 0.
type StockChangeRequest struct {
	Item     string `json:"item"`
	Quantity *int   `json:"quantity"`
}

// ItemQuantityResponse cantidad actual de un ítem.
type ItemQuantityResponse struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// StockListResponse listado completo en orden de inserción.
type StockListResponse struct {
	Total int                `json:"total"`
	Items []entity.StockItem `json:"items"`
}

// LowStockResponse ítems con cantidad <= Threshold.
type LowStockResponse struct {
	Threshold int      `json:"threshold"`
	Items     []string `json:"items"`
}

// PersistenceResponse resultado de load/save. Reason solo se informa cuando Status es "reset".
type PersistenceResponse struct {
	Status   string `json:"status"` // loaded | reset | saved
	Reason   string `json:"reason,omitempty"`
	Location string `json:"location"`
	Items    int    `json:"items"`
}
