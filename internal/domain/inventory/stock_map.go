package inventory

import "github.com/jhoicas/inventario-store/internal/domain/entity"

// StockMap mapa ítem → cantidad que conserva el orden de inserción.
// Un ítem retirado por completo se elimina; nunca queda en cero tras Remove.
type StockMap struct {
	qty   map[string]int
	order []string
}

// NewStockMap crea un mapa vacío.
func NewStockMap() *StockMap {
	return &StockMap{qty: make(map[string]int)}
}

// Len número de ítems.
func (m *StockMap) Len() int { return len(m.order) }

// Get devuelve la cantidad y si el ítem existe.
func (m *StockMap) Get(item string) (int, bool) {
	q, ok := m.qty[item]
	return q, ok
}

// Add suma qty al ítem (lo crea al final si no existe) y devuelve el nuevo total.
// Sumar 0 a un ítem inexistente no lo crea.
func (m *StockMap) Add(item string, qty int) int {
	cur, ok := m.qty[item]
	if !ok && qty == 0 {
		return 0
	}
	if !ok {
		m.order = append(m.order, item)
	}
	m.qty[item] = cur + qty
	return cur + qty
}

// Remove descuenta qty. Si qty >= stock actual el ítem se elimina y removedAll es true.
// El llamador debe verificar antes que el ítem exista.
func (m *StockMap) Remove(item string, qty int) (total int, removedAll bool) {
	cur := m.qty[item]
	if qty >= cur {
		m.Delete(item)
		return 0, true
	}
	m.qty[item] = cur - qty
	return cur - qty, false
}

// Delete elimina el ítem conservando el orden del resto.
func (m *StockMap) Delete(item string) {
	if _, ok := m.qty[item]; !ok {
		return
	}
	delete(m.qty, item)
	for i, name := range m.order {
		if name == item {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Reset vacía el mapa.
func (m *StockMap) Reset() {
	m.qty = make(map[string]int)
	m.order = nil
}

// Replace vacía el mapa y lo repuebla con items, en su orden.
// Un nombre repetido conserva la primera posición y el último valor.
func (m *StockMap) Replace(items []entity.StockItem) {
	m.Reset()
	for _, it := range items {
		if _, ok := m.qty[it.Name]; !ok {
			m.order = append(m.order, it.Name)
		}
		m.qty[it.Name] = it.Quantity
	}
}

// Items devuelve una copia ordenada del contenido.
func (m *StockMap) Items() []entity.StockItem {
	out := make([]entity.StockItem, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, entity.StockItem{Name: name, Quantity: m.qty[name]})
	}
	return out
}

// AtOrBelow devuelve, en orden de inserción, los ítems con cantidad <= threshold.
func (m *StockMap) AtOrBelow(threshold int) []string {
	out := []string{}
	for _, name := range m.order {
		if m.qty[name] <= threshold {
			out = append(out, name)
		}
	}
	return out
}
