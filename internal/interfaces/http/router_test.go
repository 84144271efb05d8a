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
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesbi-api/internal/application/analytics"
	"salesbi-api/internal/application/auth"
	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
	apphttp "salesbi-api/internal/interfaces/http"
	"salesbi-api/pkg/config"
)

// emptySource stub de las puertas de lectura: todas las colecciones vacías.
type emptySource struct{}

func (emptySource) Products(context.Context) ([]entity.Product, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Brands(context.Context) ([]entity.Brand, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Sections(context.Context) ([]entity.Section, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Suppliers(context.Context) ([]entity.Supplier, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) ProductSuppliers(context.Context) ([]entity.ProductSupplier, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Salesmen(context.Context) ([]entity.Salesman, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Divisions(context.Context) ([]entity.Division, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Customers(context.Context) ([]entity.Customer, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Invoices(context.Context, time.Time, time.Time) ([]entity.Invoice, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) InvoiceItems(context.Context) ([]entity.InvoiceItem, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) SalesReturns(context.Context, time.Time, time.Time) ([]entity.SalesReturn, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) SalesReturnItems(context.Context) ([]entity.SalesReturnItem, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) Collections(context.Context, time.Time, time.Time) ([]entity.Collection, []repository.FetchIssue) {
	return nil, nil
}
func (emptySource) StockMovements(context.Context, time.Time, time.Time) ([]entity.StockMovement, []repository.FetchIssue) {
	return nil, nil
}

func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	src := emptySource{}
	svc := analytics.NewService(src, src, src, zerolog.Nop())
	authUC, err := auth.NewUseCase(
		config.DashConfig{ExecutivePassword: "exec-pass", ManagerPassword: "manager-pass"},
		config.JWTConfig{Secret: testJWTSecret, Expiration: 60, Issuer: testIssuer},
		zerolog.Nop(),
	)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Analytics: svc,
		AuthUC:    authUC,
		JWTSecret: testJWTSecret,
	})
	return app
}

func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRouter_Health(t *testing.T) {
	app := buildAPI(t)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_LoginYDashboardEjecutivo(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "executive", "exec-pass")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive?fromDate=2024-01-01&toDate=2024-01-31", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	// Store vacío no es un error: 200 con KPIs en cero y _debug marcado
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "kpi")
	assert.Contains(t, body, "salesTrend")
	assert.Contains(t, body, "_debug")
}

func TestRouter_LoginCredencialesMalas(t *testing.T) {
	app := buildAPI(t)
	body, _ := json.Marshal(map[string]string{"username": "executive", "password": "mala"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_DashboardSinToken(t *testing.T) {
	app := buildAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ManagerEntraAlEjecutivo(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "manager", "manager-pass")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"executive y manager comparten las vistas gerenciales")
}

func TestRouter_EjecutivoEntraAlManager(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "executive", "exec-pass")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/manager?type=returns", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RangoDeFechasInvalido(t *testing.T) {
	app := buildAPI(t)
	token := loginToken(t, app, "executive", "exec-pass")

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/executive?fromDate=2024-05-01&toDate=2024-01-01", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
