package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-store/internal/application/dto"
	"github.com/jhoicas/inventario-store/internal/application/inventory"
	"github.com/jhoicas/inventario-store/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-store/internal/infrastructure/report"
	apphttp "github.com/jhoicas/inventario-store/internal/interfaces/http"
	"github.com/jhoicas/inventario-store/pkg/logger"
)

// buildInventoryApp monta el router completo sobre un archivo temporal.
func buildInventoryApp(t *testing.T, jwtSecret string) (*fiber.App, *inventory.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := inventory.NewStore(filestore.NewJSONSnapshotRepository(), logger.Nop())
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		Store:             store,
		PDF:               report.NewPDFReporter("Inventario"),
		Location:          path,
		LowStockThreshold: inventory.DefaultLowStockThreshold,
		JWTSecret:         jwtSecret,
	})
	return app, store, path
}

func doJSON(t *testing.T, app *fiber.App, method, target, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestInventoryAPI_AgregarRetirarYConsultar(t *testing.T) {
	app, _, _ := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"apple","quantity":10}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var q dto.ItemQuantityResponse
	decode(t, resp, &q)
	assert.Equal(t, 10, q.Quantity)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/remove", `{"item":"apple","quantity":3}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &q)
	assert.Equal(t, 7, q.Quantity)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/quantity?item=apple", "", "")
	decode(t, resp, &q)
	assert.Equal(t, dto.ItemQuantityResponse{Item: "apple", Quantity: 7}, q)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items", "", "")
	var list dto.StockListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Total)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID), "cada respuesta lleva X-Request-ID")
}

func TestInventoryAPI_ErroresDeValidacion(t *testing.T) {
	app, store, _ := buildInventoryApp(t, "")

	cases := []struct {
		path, body string
		status     int
	}{
		{"/api/inventory/add", `{"item":"","quantity":5}`, http.StatusBadRequest},
		{"/api/inventory/add", `{"item":"apple","quantity":-1}`, http.StatusBadRequest},
		{"/api/inventory/add", `{"item":"apple","quantity":2.5}`, http.StatusBadRequest},
		{"/api/inventory/add", `{"item":"apple"}`, http.StatusBadRequest},
		{"/api/inventory/add", `{"item":123,"quantity":1}`, http.StatusBadRequest},
		{"/api/inventory/remove", `{"item":"orange","quantity":1}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		resp := doJSON(t, app, http.MethodPost, tc.path, tc.body, "")
		assert.Equal(t, tc.status, resp.StatusCode, "%s %s", tc.path, tc.body)
		resp.Body.Close()
	}
	assert.Empty(t, store.Items(), "ninguna petición inválida debe mutar el inventario")
}

func TestInventoryAPI_LowStock(t *testing.T) {
	app, store, _ := buildInventoryApp(t, "")
	require.NoError(t, store.Add("five", 5))
	require.NoError(t, store.Add("six", 6))

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/low-stock", "", "")
	var low dto.LowStockResponse
	decode(t, resp, &low)
	assert.Equal(t, dto.LowStockResponse{Threshold: 5, Items: []string{"five"}}, low)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/low-stock?threshold=6", "", "")
	decode(t, resp, &low)
	assert.Equal(t, []string{"five", "six"}, low.Items)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/low-stock?threshold=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestInventoryAPI_SaveYLoad(t *testing.T) {
	app, store, path := buildInventoryApp(t, "")
	require.NoError(t, store.Add("apple", 7))

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/save", "", "")
	var pr dto.PersistenceResponse
	decode(t, resp, &pr)
	assert.Equal(t, "saved", pr.Status)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"apple": 7`)

	require.NoError(t, store.Add("banana", 1))
	resp = doJSON(t, app, http.MethodPost, "/api/inventory/load", "", "")
	decode(t, resp, &pr)
	assert.Equal(t, dto.PersistenceResponse{Status: "loaded", Location: path, Items: 1}, pr)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	resp = doJSON(t, app, http.MethodPost, "/api/inventory/load", "", "")
	decode(t, resp, &pr)
	assert.Equal(t, "reset", pr.Status)
	assert.Equal(t, "parse", pr.Reason)
	assert.Empty(t, store.Items())
}

func TestInventoryAPI_ReportePDF(t *testing.T) {
	app, store, _ := buildInventoryApp(t, "")
	require.NoError(t, store.Add("apple", 2))

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/report.pdf", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestInventoryAPI_MutacionesProtegidasConJWT(t *testing.T) {
	app, store, _ := buildInventoryApp(t, testJWTSecret)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"apple","quantity":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"apple","quantity":1}`, tokenForRole(t, "consulta"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"apple","quantity":1}`, tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 1, store.GetQuantity("apple"))

	// Las consultas siguen siendo públicas
	resp = doJSON(t, app, http.MethodGet, "/api/inventory/items", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestInventoryAPI_CantidadesFueraDeRango(t *testing.T) {
	app, store, _ := buildInventoryApp(t, "")

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/add", fmt.Sprintf(`{"item":"a","quantity":%d}`, math.MaxInt), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"a","quantity":1}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "VALIDATION", e.Code)

	resp = doJSON(t, app, http.MethodPost, "/api/inventory/add", `{"item":"b","quantity":99999999999999999999}`, "")
	decode(t, resp, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", e.Code)

	assert.Equal(t, math.MaxInt, store.GetQuantity("a"))
	assert.Equal(t, 0, store.GetQuantity("b"))
	assert.Empty(t, store.CheckLowItems(inventory.DefaultLowStockThreshold))
}
