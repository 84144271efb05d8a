// Package analytics contiene el pipeline ETL en memoria del dashboard:
// carga paralela de colecciones, construcción de índices de lookup, motor de
// agregación paramétrico por vista y formateo de resultados. Todo es efímero:
// cada request reconstruye sus mapas desde cero y nada se persiste.
package analytics

import (
	"context"
	"sync"
	"time"

	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
)

// Dataset snapshot crudo de todas las colecciones que una vista necesita.
// Issues acumula los fetchs degradados para el bloque _debug.
type Dataset struct {
	Invoices         []entity.Invoice
	InvoiceItems     []entity.InvoiceItem
	Returns          []entity.SalesReturn
	ReturnItems      []entity.SalesReturnItem
	Collections      []entity.Collection
	Products         []entity.Product
	Brands           []entity.Brand
	Sections         []entity.Section
	Suppliers        []entity.Supplier
	ProductSuppliers []entity.ProductSupplier
	Salesmen         []entity.Salesman
	Divisions        []entity.Division
	Customers        []entity.Customer
	StockMovements   []entity.StockMovement

	Issues []repository.FetchIssue
}

// Empty reporta si el snapshot no trajo ningún insumo transaccional ni de
// catálogo (el caso de "vacío total" que responde 200 con KPIs en cero).
func (d *Dataset) Empty() bool {
	return len(d.Invoices) == 0 && len(d.InvoiceItems) == 0 &&
		len(d.Returns) == 0 && len(d.Collections) == 0 && len(d.Products) == 0
}

// LoadDataset trae todas las colecciones en paralelo (fan-out/fan-in).
// Cada fetch falla de forma suave a vacío, así que el join nunca aborta:
// la agregación corre con lo que haya llegado. stock es opcional (solo la
// vista de manager lo necesita); con nil se omite esa colección.
func LoadDataset(
	ctx context.Context,
	catalog repository.CatalogSource,
	sales repository.SalesSource,
	stock repository.StockSource,
	from, to time.Time,
) *Dataset {
	ds := &Dataset{}

	var wg sync.WaitGroup
	var mu sync.Mutex // protege ds.Issues; cada goroutine escribe su propio campo

	collect := func(issues []repository.FetchIssue) {
		if len(issues) == 0 {
			return
		}
		mu.Lock()
		ds.Issues = append(ds.Issues, issues...)
		mu.Unlock()
	}
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() {
		var issues []repository.FetchIssue
		ds.Invoices, issues = sales.Invoices(ctx, from, to)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.InvoiceItems, issues = sales.InvoiceItems(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Returns, issues = sales.SalesReturns(ctx, from, to)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.ReturnItems, issues = sales.SalesReturnItems(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Collections, issues = sales.Collections(ctx, from, to)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Products, issues = catalog.Products(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Brands, issues = catalog.Brands(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Sections, issues = catalog.Sections(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Suppliers, issues = catalog.Suppliers(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.ProductSuppliers, issues = catalog.ProductSuppliers(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Salesmen, issues = catalog.Salesmen(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Divisions, issues = catalog.Divisions(ctx)
		collect(issues)
	})
	run(func() {
		var issues []repository.FetchIssue
		ds.Customers, issues = catalog.Customers(ctx)
		collect(issues)
	})
	if stock != nil {
		run(func() {
			var issues []repository.FetchIssue
			ds.StockMovements, issues = stock.StockMovements(ctx, from, to)
			collect(issues)
		})
	}

	wg.Wait()
	return ds
}
