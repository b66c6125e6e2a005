package inventory

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/jhoicas/inventario-store/internal/domain"
	"github.com/jhoicas/inventario-store/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-store/internal/domain/inventory"
	"github.com/jhoicas/inventario-store/internal/domain/repository"
	"github.com/jhoicas/inventario-store/pkg/logger"
)

// DefaultLowStockThreshold umbral por defecto de CheckLowItems.
const DefaultLowStockThreshold = 5

// Store mantiene el mapa de stock en memoria y lo persiste vía SnapshotRepository.
// Ninguna operación entra en pánico ni aborta: los fallos se registran en el log
// y además se devuelven como error para el llamador que los necesite.
type Store struct {
	mu    sync.Mutex
	stock *domaininv.StockMap
	repo  repository.SnapshotRepository
	log   *logger.Logger
}

// NewStore construye un almacén vacío.
func NewStore(repo repository.SnapshotRepository, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		stock: domaininv.NewStockMap(),
		repo:  repo,
		log:   log,
	}
}

func validate(item string, qty int) error {
	if strings.TrimSpace(item) == "" {
		return domain.ErrInvalidItemName
	}
	if qty < 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Add suma qty unidades a item. qty = 0 es válido y no crea el ítem si no existe.
// Un total que no cabe en int se rechaza como entrada inválida.
func (s *Store) Add(item string, qty int) error {
	if err := validate(item, qty); err != nil {
		s.log.Error().Str("op", "add").Str("item", item).Int("qty", qty).Err(err).Msg("entrada rechazada")
		return err
	}

	s.mu.Lock()
	cur, _ := s.stock.Get(item)
	if qty > math.MaxInt-cur {
		s.mu.Unlock()
		s.log.Error().Str("op", "add").Str("item", item).Int("qty", qty).Int("total", cur).
			Err(domain.ErrQuantityOverflow).Msg("entrada rechazada")
		return domain.ErrQuantityOverflow
	}
	total := s.stock.Add(item, qty)
	s.mu.Unlock()

	s.log.Info().Str("op", "add").Str("item", item).Int("qty", qty).Int("total", total).Msg("stock agregado")
	return nil
}

// Remove descuenta qty unidades de item. Si qty alcanza o supera el stock, el ítem se elimina.
func (s *Store) Remove(item string, qty int) error {
	if err := validate(item, qty); err != nil {
		s.log.Error().Str("op", "remove").Str("item", item).Int("qty", qty).Err(err).Msg("entrada rechazada")
		return err
	}

	s.mu.Lock()
	if _, ok := s.stock.Get(item); !ok {
		s.mu.Unlock()
		s.log.Warn().Str("op", "remove").Str("item", item).Int("qty", qty).Msg("ítem inexistente")
		return domain.ErrItemNotFound
	}
	total, removedAll := s.stock.Remove(item, qty)
	s.mu.Unlock()

	if removedAll {
		s.log.Info().Str("op", "remove").Str("item", item).Int("qty", qty).Msg("retirado todo el stock restante")
		return nil
	}
	s.log.Info().Str("op", "remove").Str("item", item).Int("qty", qty).Int("total", total).Msg("stock retirado")
	return nil
}

// GetQuantity devuelve la cantidad de item, 0 si no existe.
func (s *Store) GetQuantity(item string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, _ := s.stock.Get(item)
	return q
}

// CheckLowItems devuelve los ítems con cantidad <= threshold en orden de inserción.
func (s *Store) CheckLowItems(threshold int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock.AtOrBelow(threshold)
}

// Items devuelve una copia ordenada del stock (para reportes).
func (s *Store) Items() []entity.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock.Items()
}

// Load reemplaza el stock por el snapshot en location. Ante cualquier fallo el
// almacén queda vacío; el *domain.LoadError devuelto indica la causa.
func (s *Store) Load(ctx context.Context, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Read(ctx, location)
	if err != nil {
		s.stock.Reset()
		s.logLoadFailure(location, err)
		return err
	}
	s.stock.Replace(items)
	s.log.Info().Str("op", "load").Str("location", location).Int("items", s.stock.Len()).Msg("inventario cargado")
	return nil
}

func (s *Store) logLoadFailure(location string, err error) {
	switch domain.LoadKindOf(err) {
	case domain.LoadNotFound:
		s.log.Warn().Str("op", "load").Str("location", location).Msg("snapshot no encontrado, se inicia con inventario vacío")
	case domain.LoadEmpty:
		s.log.Warn().Str("op", "load").Str("location", location).Msg("snapshot vacío, se inicia con inventario vacío")
	case domain.LoadParse:
		s.log.Error().Str("op", "load").Str("location", location).Err(err).Msg("snapshot malformado, se inicia con inventario vacío")
	default:
		s.log.Critical().Str("op", "load").Str("location", location).Err(err).Msg("error de E/S al cargar, se inicia con inventario vacío")
	}
}

// Save escribe el stock completo en location. No reintenta; el stock en memoria no cambia.
func (s *Store) Save(ctx context.Context, location string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Write(ctx, location, s.stock.Items()); err != nil {
		s.log.Error().Str("op", "save").Str("location", location).Err(err).Msg("no se pudo guardar el inventario")
		return err
	}
	s.log.Info().Str("op", "save").Str("location", location).Int("items", s.stock.Len()).Msg("inventario guardado")
	return nil
}
