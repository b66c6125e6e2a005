// Package filestore persiste el mapa de stock como un objeto JSON plano
// (ítem → cantidad) en un archivo UTF-8, conservando el orden de inserción.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	"github.com/jhoicas/inventario-store/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*JSONSnapshotRepo)(nil)

const indent = "    "

// JSONSnapshotRepo implementación de SnapshotRepository sobre archivos JSON.
type JSONSnapshotRepo struct {
	perm fs.FileMode
}

// NewJSONSnapshotRepository construye el adaptador; los archivos nuevos se crean con 0644.
func NewJSONSnapshotRepository() *JSONSnapshotRepo {
	return &JSONSnapshotRepo{perm: 0o644}
}

// Read lee el archivo completo en path y decodifica el objeto en orden.
func (r *JSONSnapshotRepo) Read(_ context.Context, path string) ([]entity.StockItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewLoadError(domain.LoadNotFound, path, err)
		}
		return nil, domain.NewLoadError(domain.LoadIO, path, err)
	}
	if len(data) == 0 {
		return nil, domain.NewLoadError(domain.LoadEmpty, path, nil)
	}
	items, err := Decode(data)
	if err != nil {
		return nil, domain.NewLoadError(domain.LoadParse, path, err)
	}
	return items, nil
}

// Write trunca el archivo y escribe el snapshot. Una escritura fallida deja el archivo como haya quedado.
func (r *JSONSnapshotRepo) Write(_ context.Context, path string, items []entity.StockItem) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, r.perm); err != nil {
		return fmt.Errorf("escribir %q: %w", path, err)
	}
	return nil
}

// Encode serializa items como objeto JSON indentado con 4 espacios, en el orden recibido.
func Encode(items []entity.StockItem) ([]byte, error) {
	if len(items) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, it := range items {
		key, err := json.Marshal(it.Name)
		if err != nil {
			return nil, fmt.Errorf("codificar ítem %q: %w", it.Name, err)
		}
		buf.WriteString(indent)
		buf.Write(key)
		fmt.Fprintf(&buf, ": %d", it.Quantity)
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode interpreta data como objeto plano de claves string y valores enteros >= 0.
// Las entradas con cantidad 0 se descartan; una clave repetida conserva su primera posición.
func Decode(data []byte) ([]entity.StockItem, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("se esperaba un objeto JSON, se obtuvo %v", tok)
	}

	var items []entity.StockItem
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("nombre de ítem vacío")
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("ítem %q: la cantidad debe ser un entero, se obtuvo %v", name, tok)
		}
		qty, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("ítem %q: cantidad %s no es un entero", name, num)
		}
		if qty < 0 {
			return nil, fmt.Errorf("ítem %q: cantidad negativa %d", name, qty)
		}

		if i, seen := index[name]; seen {
			items[i].Quantity = int(qty)
			continue
		}
		index[name] = len(items)
		items = append(items, entity.StockItem{Name: name, Quantity: int(qty)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("datos adicionales después del objeto JSON")
	}

	out := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out, nil
}
