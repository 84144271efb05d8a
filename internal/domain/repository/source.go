package repository

import (
	"context"
	"time"

	"salesbi-api/internal/domain/entity"
)

// FetchIssue diagnóstico de un fetch fallido contra el item store.
// Un fallo de red/timeout/estado no-2xx nunca aborta el request: la colección
// degrada a vacío y el issue viaja hasta el bloque _debug de la respuesta.
type FetchIssue struct {
	Collection string `json:"collection"`
	Status     int    `json:"status"` // 0 si el fallo fue de red o decode
	URL        string `json:"url"`
	Message    string `json:"message"`
}

// CatalogSource lecturas de catálogo (colecciones sin filtro de fechas).
// Las implementaciones son read-only y de fallo suave: nunca devuelven error,
// solo filas más issues.
type CatalogSource interface {
	Products(ctx context.Context) ([]entity.Product, []FetchIssue)
	Brands(ctx context.Context) ([]entity.Brand, []FetchIssue)
	Sections(ctx context.Context) ([]entity.Section, []FetchIssue)
	Suppliers(ctx context.Context) ([]entity.Supplier, []FetchIssue)
	ProductSuppliers(ctx context.Context) ([]entity.ProductSupplier, []FetchIssue)
	Salesmen(ctx context.Context) ([]entity.Salesman, []FetchIssue)
	Divisions(ctx context.Context) ([]entity.Division, []FetchIssue)
	Customers(ctx context.Context) ([]entity.Customer, []FetchIssue)
}

// SalesSource lecturas transaccionales acotadas por rango de fechas.
// Los detalles (items) no se filtran por fecha: la cabecera manda y las líneas
// huérfanas se descartan en la agregación.
type SalesSource interface {
	Invoices(ctx context.Context, from, to time.Time) ([]entity.Invoice, []FetchIssue)
	InvoiceItems(ctx context.Context) ([]entity.InvoiceItem, []FetchIssue)
	SalesReturns(ctx context.Context, from, to time.Time) ([]entity.SalesReturn, []FetchIssue)
	SalesReturnItems(ctx context.Context) ([]entity.SalesReturnItem, []FetchIssue)
	Collections(ctx context.Context, from, to time.Time) ([]entity.Collection, []FetchIssue)
}

// StockSource movimientos de bodega para la vista de velocidad de inventario.
type StockSource interface {
	StockMovements(ctx context.Context, from, to time.Time) ([]entity.StockMovement, []FetchIssue)
}
