package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidItemName  = fmt.Errorf("%w: el nombre del ítem no puede estar vacío", ErrInvalidInput)
	ErrInvalidQuantity  = fmt.Errorf("%w: la cantidad debe ser un entero no negativo", ErrInvalidInput)
	ErrQuantityOverflow = fmt.Errorf("%w: el total excede la cantidad máxima representable", ErrInvalidInput)
	ErrItemNotFound     = errors.New("ítem no encontrado en el inventario")
	ErrSnapshotNotFound = errors.New("snapshot de inventario no encontrado")
)

// LoadFailureKind clasifica por qué no se pudo cargar un snapshot.
type LoadFailureKind int

const (
	LoadNotFound LoadFailureKind = iota + 1
	LoadEmpty
	LoadParse
	LoadIO
)

func (k LoadFailureKind) String() string {
	switch k {
	case LoadNotFound:
		return "not_found"
	case LoadEmpty:
		return "empty"
	case LoadParse:
		return "parse"
	case LoadIO:
		return "io"
	default:
		return "unknown"
	}
}

// LoadError error de carga con su clasificación. Los repositorios de snapshot
// devuelven siempre *LoadError en Read.
type LoadError struct {
	Kind     LoadFailureKind
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cargar %q: %s", e.Location, e.Kind)
	}
	return fmt.Sprintf("cargar %q: %s: %v", e.Location, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError construye un LoadError.
func NewLoadError(kind LoadFailureKind, location string, err error) *LoadError {
	return &LoadError{Kind: kind, Location: location, Err: err}
}

// LoadKindOf devuelve la clasificación de err, o 0 si no es un *LoadError.
func LoadKindOf(err error) LoadFailureKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}
