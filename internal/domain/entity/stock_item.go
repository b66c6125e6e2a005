package entity

// StockItem representa la cantidad disponible de un ítem (fila de un snapshot).
type StockItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
