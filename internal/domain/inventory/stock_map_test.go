package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-store/internal/domain/entity"
)

func TestStockMap_AddConservaOrdenDeInsercion(t *testing.T) {
	m := NewStockMap()
	m.Add("banana", 2)
	m.Add("apple", 1)
	total := m.Add("banana", 3)

	assert.Equal(t, 5, total)
	assert.Equal(t, []entity.StockItem{{Name: "banana", Quantity: 5}, {Name: "apple", Quantity: 1}}, m.Items())
}

func TestStockMap_RemoveParcialYTotal(t *testing.T) {
	m := NewStockMap()
	m.Add("apple", 10)

	total, all := m.Remove("apple", 3)
	assert.Equal(t, 7, total)
	assert.False(t, all)

	total, all = m.Remove("apple", 7)
	assert.Equal(t, 0, total)
	assert.True(t, all)
	_, ok := m.Get("apple")
	assert.False(t, ok, "un ítem sin stock no debe quedar como clave")
	assert.Equal(t, 0, m.Len())
}

func TestStockMap_DeleteYReinsertarVaAlFinal(t *testing.T) {
	m := NewStockMap()
	m.Add("a", 1)
	m.Add("b", 1)
	m.Add("c", 1)
	m.Delete("a")
	m.Add("a", 2)

	names := []string{}
	for _, it := range m.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"b", "c", "a"}, names)
}

func TestStockMap_ReplaceLimpiaAntes(t *testing.T) {
	m := NewStockMap()
	m.Add("old", 4)
	m.Replace([]entity.StockItem{{Name: "x", Quantity: 1}, {Name: "y", Quantity: 2}, {Name: "x", Quantity: 9}})

	_, ok := m.Get("old")
	assert.False(t, ok)
	require.Equal(t, 2, m.Len())
	assert.Equal(t, []entity.StockItem{{Name: "x", Quantity: 9}, {Name: "y", Quantity: 2}}, m.Items())
}

func TestStockMap_AtOrBelow(t *testing.T) {
	m := NewStockMap()
	m.Add("six", 6)
	m.Add("five", 5)
	m.Add("one", 1)

	assert.Equal(t, []string{"five", "one"}, m.AtOrBelow(5))
	assert.Equal(t, []string{}, m.AtOrBelow(-1))
}

func TestStockMap_AddCeroNoCreaItem(t *testing.T) {
	m := NewStockMap()
	assert.Equal(t, 0, m.Add("ghost", 0))

	_, ok := m.Get("ghost")
	assert.False(t, ok, "sumar 0 a un ítem inexistente no debe crear la clave")
	assert.Equal(t, 0, m.Len())

	m.Add("apple", 2)
	assert.Equal(t, 2, m.Add("apple", 0))
}
