package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/glowdesk/salon-api/internal/application/analytics"
	appinventory "github.com/glowdesk/salon-api/internal/application/inventory"
	"github.com/glowdesk/salon-api/internal/application/reports"
	"github.com/glowdesk/salon-api/internal/application/usecase"
	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/repository"
	apphttp "github.com/glowdesk/salon-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de persistencia para montar el router completo sin BD
// ──────────────────────────────────────────────────────────────────────────────

type routerProductRepo struct {
	products  []*entity.Product
	createErr error
}

func (r *routerProductRepo) Create(p *entity.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.products = append(r.products, p)
	return nil
}

func (r *routerProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *routerProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *routerProductRepo) Update(p *entity.Product) error { return nil }

func (r *routerProductRepo) UpdateQuantity(id string, quantity int64) error { return nil }

func (r *routerProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *routerProductRepo) ListAll(category string) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *routerProductRepo) Delete(id string) error { return nil }

func (r *routerProductRepo) DeleteMany(ids []string) (int64, error) {
	var kept []*entity.Product
	var deleted int64
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	for _, p := range r.products {
		if _, ok := set[p.ID]; ok {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	return deleted, nil
}

func (r *routerProductRepo) ExistingIDs(ids []string) ([]string, error) {
	var existing []string
	for _, id := range ids {
		if p, _ := r.GetByID(id); p != nil {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

type routerHistoryRepo struct {
	entries []*entity.HistoryEntry
}

func (r *routerHistoryRepo) Append(e *entity.HistoryEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *routerHistoryRepo) ListByProduct(productID string, from, to *time.Time) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *routerHistoryRepo) ListAll(from, to *time.Time) ([]*entity.HistoryEntry, error) {
	return r.entries, nil
}

type routerTxRunner struct {
	products *routerProductRepo
	history  *routerHistoryRepo
}

func (t *routerTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.HistoryRepository) error) error {
	return fn(t.products, t.history)
}

type routerPDFStub struct{}

func (routerPDFStub) GeneratePeriodReport(ctx context.Context, data *reports.PeriodReportData) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// buildRouterApp monta la app Fiber con todas las rutas y los stubs.
func buildRouterApp(products *routerProductRepo, history *routerHistoryRepo) *fiber.App {
	tx := &routerTxRunner{products: products, history: history}
	usageUC := reports.NewUsageReportUseCase(products, history)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:      usecase.NewProductUseCase(products, tx),
		StockMovement:  appinventory.NewStockMovementUseCase(tx),
		DashboardUC:    appanalytics.NewDashboardUseCase(products, history),
		UsageReportUC:  usageUC,
		PeriodReportUC: reports.NewPeriodReportUseCase(usageUC, routerPDFStub{}),
		JWTSecret:      testJWTSecret,
	})
	return app
}

func routerRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", testToken(t))
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de rutas publicadas
// ──────────────────────────────────────────────────────────────────────────────

// El resumen del dashboard vive en GET /api/dashboard/summary, la misma
// ruta que publica la documentación.
func TestRouter_DashboardSummary_RutaPublicada(t *testing.T) {
	app := buildRouterApp(&routerProductRepo{}, &routerHistoryRepo{})

	resp := routerRequest(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["total_items"], "inventario vacío: resumen en cero")
}

// El borrado masivo vive en POST /api/products/bulk-delete, la misma
// ruta que publican la documentación y el DTO.
func TestRouter_BulkDelete_RutaPublicada(t *testing.T) {
	products := &routerProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Shampoo"},
		{ID: "p2", Name: "Esmalte"},
	}}
	app := buildRouterApp(products, &routerHistoryRepo{})

	resp := routerRequest(t, app, http.MethodPost, "/api/products/bulk-delete",
		fiber.Map{"ids": []string{"p1", "p2"}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 2, body["deleted_count"])
}

// Un id duplicado al crear responde 409 CONFLICT, no 500.
func TestRouter_CrearProductoDuplicado_Retorna409(t *testing.T) {
	products := &routerProductRepo{createErr: domain.ErrDuplicate}
	app := buildRouterApp(products, &routerHistoryRepo{})

	resp := routerRequest(t, app, http.MethodPost, "/api/products",
		fiber.Map{"name": "Shampoo", "quantity": 5, "price": "8.00"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CONFLICT", body["code"])
}
