package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	apphttp "github.com/jhoicas/stock-alerts-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlerts struct {
	got dto.LowStockAlertsQuery
	out *dto.LowStockAlertsResponse
	err error
}

func (f *fakeAlerts) GetLowStockAlerts(_ context.Context, q dto.LowStockAlertsQuery) (*dto.LowStockAlertsResponse, error) {
	f.got = q
	return f.out, f.err
}

type fakeReport struct {
	got dto.LowStockAlertsQuery
	err error
}

func (f *fakeReport) DownloadRestockReport(_ context.Context, q dto.LowStockAlertsQuery) ([]byte, string, error) {
	f.got = q
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("%PDF-1.3 fake"), "reposicion-1-20261015.pdf", nil
}

type fakeProducts struct {
	got dto.CreateProductRequest
	err error
}

func (f *fakeProducts) CreateProduct(_ context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &dto.CreateProductResponse{Message: "Product created", ProductID: 42}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	app      *fiber.App
	alerts   *fakeAlerts
	report   *fakeReport
	products *fakeProducts
}

func buildTestApp() *testApp {
	ta := &testApp{
		alerts:   &fakeAlerts{out: &dto.LowStockAlertsResponse{Alerts: []dto.LowStockAlertDTO{}}},
		report:   &fakeReport{},
		products: &fakeProducts{},
	}
	ta.app = fiber.New()
	apphttp.Router(ta.app, apphttp.RouterDeps{
		Alerts:        ta.alerts,
		RestockReport: ta.report,
		Products:      ta.products,
	})
	return ta
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/companies/:company_id/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_OK_SerializaDiasNulos(t *testing.T) {
	ta := buildTestApp()
	d := 4
	ta.alerts.out = &dto.LowStockAlertsResponse{
		Alerts: []dto.LowStockAlertDTO{
			{ProductID: 1, SKU: "A", DaysUntilStockout: &d, Supplier: dto.AlertSupplierDTO{ID: 7, Name: "P"}},
			{ProductID: 2, SKU: "B", Supplier: dto.AlertSupplierDTO{ID: 8, Name: "Q"}},
		},
		TotalAlerts: 2,
	}

	resp, body := do(t, ta.app, httptest.NewRequest(http.MethodGet, "/api/companies/5/alerts/low-stock", nil))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(5), ta.alerts.got.CompanyID)
	assert.Zero(t, ta.alerts.got.WindowDays, "sin parámetro se usa la ventana configurada")
	assert.Nil(t, ta.alerts.got.AsOf)

	var raw struct {
		Alerts []map[string]any `json:"alerts"`
		Total  int              `json:"total_alerts"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Len(t, raw.Alerts, 2)
	assert.Equal(t, 2, raw.Total)
	assert.EqualValues(t, 4, raw.Alerts[0]["days_until_stockout"])
	v, present := raw.Alerts[1]["days_until_stockout"]
	assert.True(t, present, "days_until_stockout debe estar presente aunque sea null")
	assert.Nil(t, v)
	supplier := raw.Alerts[1]["supplier"].(map[string]any)
	_, present = supplier["contact_email"]
	assert.True(t, present)
}

func TestLowStock_ParametrosDeVentana(t *testing.T) {
	ta := buildTestApp()

	resp, _ := do(t, ta.app, httptest.NewRequest(http.MethodGet,
		"/api/companies/5/alerts/low-stock?window_days=7&as_of=2026-10-15T12:00:00Z", nil))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, ta.alerts.got.WindowDays)
	require.NotNil(t, ta.alerts.got.AsOf)
	assert.True(t, ta.alerts.got.AsOf.Equal(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)))
}

func TestLowStock_ParametrosInvalidos(t *testing.T) {
	cases := map[string]string{
		"company_id no numérico": "/api/companies/abc/alerts/low-stock",
		"company_id cero":        "/api/companies/0/alerts/low-stock",
		"window_days texto":      "/api/companies/1/alerts/low-stock?window_days=abc",
		"window_days cero":       "/api/companies/1/alerts/low-stock?window_days=0",
		"as_of sin zona":         "/api/companies/1/alerts/low-stock?as_of=2026-10-15",
	}
	for name, url := range cases {
		t.Run(name, func(t *testing.T) {
			ta := buildTestApp()
			resp, body := do(t, ta.app, httptest.NewRequest(http.MethodGet, url, nil))
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", errorCode(t, body))
		})
	}
}

func TestLowStock_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"empresa inexistente", fmt.Errorf("%w: empresa 9", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"ventana fuera de rango", fmt.Errorf("%w: window_days", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{"fallo de base de datos", errors.New("conn refused"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta := buildTestApp()
			ta.alerts.err = tc.err
			resp, body := do(t, ta.app, httptest.NewRequest(http.MethodGet, "/api/companies/9/alerts/low-stock", nil))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, errorCode(t, body))
		})
	}
}

func TestRequestID_SeGeneraOSeRespeta(t *testing.T) {
	ta := buildTestApp()

	resp, _ := do(t, ta.app, httptest.NewRequest(http.MethodGet, "/api/companies/1/alerts/low-stock", nil))
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/api/companies/1/alerts/low-stock", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, _ = do(t, ta.app, req)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/companies/:company_id/alerts/low-stock/report.pdf
// ──────────────────────────────────────────────────────────────────────────────

func TestRestockReportPDF_OK(t *testing.T) {
	ta := buildTestApp()

	resp, body := do(t, ta.app, httptest.NewRequest(http.MethodGet,
		"/api/companies/1/alerts/low-stock/report.pdf?window_days=14", nil))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "reposicion-1-20261015.pdf")
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
	assert.Equal(t, 14, ta.report.got.WindowDays)
}

func TestRestockReportPDF_EmpresaInexistente(t *testing.T) {
	ta := buildTestApp()
	ta.report.err = domain.ErrNotFound

	resp, body := do(t, ta.app, httptest.NewRequest(http.MethodGet, "/api/companies/1/alerts/low-stock/report.pdf", nil))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func postProduct(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return do(t, app, req)
}

func TestCreateProduct_Creado(t *testing.T) {
	ta := buildTestApp()

	resp, body := postProduct(t, ta.app,
		`{"name":"Tornillo","sku":"tor-1","price":"12.50","warehouse_id":3,"initial_quantity":20}`)

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.CreateProductResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Product created", out.Message)
	assert.Equal(t, int64(42), out.ProductID)

	require.NotNil(t, ta.products.got.Price)
	assert.Equal(t, "12.5", ta.products.got.Price.String())
	require.NotNil(t, ta.products.got.WarehouseID)
	assert.Equal(t, int64(3), *ta.products.got.WarehouseID)
	assert.Nil(t, ta.products.got.LowStockThreshold)
}

func TestCreateProduct_PrecioNoNumerico(t *testing.T) {
	ta := buildTestApp()

	resp, body := postProduct(t, ta.app,
		`{"name":"Tornillo","sku":"tor-1","price":"abc","warehouse_id":3,"initial_quantity":20}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, body))
}

func TestCreateProduct_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"campos faltantes", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"bodega inexistente", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"SKU duplicado", fmt.Errorf("%w: SKU 'TOR-1' ya existe", domain.ErrDuplicate), fiber.StatusConflict, "DUPLICATE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta := buildTestApp()
			ta.products.err = tc.err
			resp, body := postProduct(t, ta.app, `{"name":"x"}`)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, errorCode(t, body))
		})
	}
}
