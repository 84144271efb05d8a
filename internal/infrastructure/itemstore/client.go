// Package itemstore implementa el acceso al backend headless de solo lectura:
// un servicio HTTP que expone colecciones planas en GET /items/{collection}
// con respuesta {data:[...]}, paginado por limit/offset y filtrable por query
// params. Todo fallo degrada a colección vacía más un FetchIssue; este paquete
// jamás propaga errores duros hacia los casos de uso.
package itemstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"salesbi-api/internal/domain/repository"
	"salesbi-api/pkg/config"
)

// Query describe la lectura de una colección.
type Query struct {
	Collection string
	Fields     []string
	// Filter usa las llaves completas del store, ej. "filter[date][_gte]": "2024-01-01".
	Filter map[string]string
}

// Client cliente HTTP del item store. Una instancia por proceso; es seguro
// para uso concurrente (no guarda estado por request).
type Client struct {
	baseURL  string
	token    string
	pageSize int
	maxPages int
	timeout  time.Duration
	hc       *http.Client
	log      zerolog.Logger
}

// NewClient construye el cliente a partir de la configuración.
// El timeout configurado aplica por página vía context, no sobre http.Client,
// para que cada reintento de colección arranque con presupuesto completo.
func NewClient(cfg config.StoreConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		token:    cfg.Token,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		timeout:  cfg.Timeout(),
		hc:       &http.Client{},
		log:      log,
	}
}

// FetchAll lee la colección completa paginando con tamaño fijo.
// Termina cuando una página llega corta o se alcanza el tope de páginas.
// Una página fallida (red, timeout, no-2xx, decode) cuenta como vacía: corta
// la paginación y agrega el diagnóstico; un intento por página, sin reintentos.
func (c *Client) FetchAll(ctx context.Context, q Query) ([]Record, []repository.FetchIssue) {
	var all []Record
	var issues []repository.FetchIssue

	for page := 0; page < c.maxPages; page++ {
		records, issue := c.fetchPage(ctx, q, page*c.pageSize)
		if issue != nil {
			issues = append(issues, *issue)
			c.log.Warn().
				Str("collection", issue.Collection).
				Int("status", issue.Status).
				Str("url", issue.URL).
				Msg("fetch de colección degradado a vacío")
			break
		}
		all = append(all, records...)
		if len(records) < c.pageSize {
			break
		}
	}
	return all, issues
}

// fetchPage lee una página. Devuelve issue != nil en cualquier fallo.
func (c *Client) fetchPage(ctx context.Context, q Query, offset int) ([]Record, *repository.FetchIssue) {
	u := c.buildURL(q, offset)

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, c.issue(q.Collection, 0, u, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, c.issue(q.Collection, 0, u, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.issue(q.Collection, resp.StatusCode, u,
			fmt.Sprintf("estado HTTP inesperado: %s", resp.Status))
	}

	var body struct {
		Data []Record `json:"data"`
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // montos como json.Number para no perder precisión decimal
	if err := dec.Decode(&body); err != nil {
		return nil, c.issue(q.Collection, resp.StatusCode, u, "decode: "+err.Error())
	}
	return body.Data, nil
}

func (c *Client) buildURL(q Query, offset int) string {
	params := url.Values{}
	if len(q.Fields) > 0 {
		params.Set("fields", strings.Join(q.Fields, ","))
	}
	params.Set("limit", strconv.Itoa(c.pageSize))
	params.Set("offset", strconv.Itoa(offset))
	for k, v := range q.Filter {
		params.Set(k, v)
	}
	return fmt.Sprintf("%s/items/%s?%s", c.baseURL, q.Collection, params.Encode())
}

func (c *Client) issue(collection string, status int, u, msg string) *repository.FetchIssue {
	return &repository.FetchIssue{Collection: collection, Status: status, URL: u, Message: msg}
}
