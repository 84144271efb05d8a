package itemstore_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"salesbi-api/internal/infrastructure/itemstore"
	"salesbi-api/pkg/config"
)

func newTestClient(baseURL string, pageSize, maxPages int) *itemstore.Client {
	return itemstore.NewClient(config.StoreConfig{
		BaseURL:        baseURL,
		Token:          "token-de-prueba",
		TimeoutSeconds: 2,
		PageSize:       pageSize,
		MaxPages:       maxPages,
	}, zerolog.Nop())
}

// ── Paginación ───────────────────────────────────────────────────────────────

// El cliente debe seguir pidiendo páginas hasta recibir una corta.
func TestFetchAll_PaginaHastaPaginaCorta(t *testing.T) {
	const pageSize = 3
	total := 7 // 3 + 3 + 1: tres requests

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "Bearer token-de-prueba", r.Header.Get("Authorization"))
		require.Equal(t, strconv.Itoa(pageSize), r.URL.Query().Get("limit"))

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[`)
		for i := 0; i < pageSize && offset+i < total; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id": %d}`, offset+i+1)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, pageSize, 10)
	records, issues := c.FetchAll(context.Background(), itemstore.Query{Collection: "product"})

	assert.Len(t, records, total)
	assert.Empty(t, issues)
	assert.Equal(t, 3, requests, "7 filas con páginas de 3 son exactamente 3 requests")
}

// El tope de páginas debe cortar aunque el server siga devolviendo páginas llenas.
func TestFetchAll_RespetaTopeDePaginas(t *testing.T) {
	const pageSize = 2
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"data":[{"id":1},{"id":2}]}`) // siempre llena
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, pageSize, 4)
	records, issues := c.FetchAll(context.Background(), itemstore.Query{Collection: "invoice_item"})

	assert.Len(t, records, pageSize*4)
	assert.Empty(t, issues)
	assert.Equal(t, 4, requests, "el tope de páginas evita loops infinitos")
}

// ── Fallo suave ──────────────────────────────────────────────────────────────

// Un estado no-2xx degrada a vacío con diagnóstico, nunca error duro.
func TestFetchAll_Estado500_DegradaConIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 100, 5)
	records, issues := c.FetchAll(context.Background(), itemstore.Query{Collection: "supplier"})

	assert.Empty(t, records)
	require.Len(t, issues, 1, "un solo intento por página, sin reintentos")
	assert.Equal(t, "supplier", issues[0].Collection)
	assert.Equal(t, http.StatusInternalServerError, issues[0].Status)
	assert.Contains(t, issues[0].URL, "/items/supplier")
}

// Un timeout también degrada a vacío con diagnóstico de red (status 0).
func TestFetchAll_Timeout_DegradaConIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer srv.Close()

	c := itemstore.NewClient(config.StoreConfig{
		BaseURL:        srv.URL,
		TimeoutSeconds: 1,
		PageSize:       100,
		MaxPages:       5,
	}, zerolog.Nop())
	records, issues := c.FetchAll(context.Background(), itemstore.Query{Collection: "collection"})

	assert.Empty(t, records)
	require.Len(t, issues, 1)
	assert.Equal(t, 0, issues[0].Status, "fallo de red/timeout reporta status 0")
}

// Un body que no es {data:[...]} degrada igual que un fallo de red.
func TestFetchAll_BodyInvalido_DegradaConIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>mantenimiento</html>`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 100, 5)
	records, issues := c.FetchAll(context.Background(), itemstore.Query{Collection: "salesman"})

	assert.Empty(t, records)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "decode")
}

// Los filtros viajan como query params con la llave completa del store.
func TestFetchAll_PropagaFiltros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("filter[date][_gte]"))
		assert.Equal(t, "id,date", r.URL.Query().Get("fields"))
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 100, 5)
	_, issues := c.FetchAll(context.Background(), itemstore.Query{
		Collection: "invoice",
		Fields:     []string{"id", "date"},
		Filter:     map[string]string{"filter[date][_gte]": "2024-01-01"},
	})
	assert.Empty(t, issues)
}
