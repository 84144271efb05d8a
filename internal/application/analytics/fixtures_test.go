package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
)

// fakeSource implementa las tres puertas de lectura sobre slices en memoria.
// Respeta el contrato de fallo suave: nunca error, solo filas más issues.
type fakeSource struct {
	invoices     []entity.Invoice
	invoiceItems []entity.InvoiceItem
	returns      []entity.SalesReturn
	returnItems  []entity.SalesReturnItem
	collections  []entity.Collection

	products         []entity.Product
	brands           []entity.Brand
	sections         []entity.Section
	suppliers        []entity.Supplier
	productSuppliers []entity.ProductSupplier
	salesmen         []entity.Salesman
	divisions        []entity.Division
	customers        []entity.Customer

	movements []entity.StockMovement

	issues []repository.FetchIssue
}

func (f *fakeSource) Products(context.Context) ([]entity.Product, []repository.FetchIssue) {
	return f.products, f.issues
}
func (f *fakeSource) Brands(context.Context) ([]entity.Brand, []repository.FetchIssue) {
	return f.brands, nil
}
func (f *fakeSource) Sections(context.Context) ([]entity.Section, []repository.FetchIssue) {
	return f.sections, nil
}
func (f *fakeSource) Suppliers(context.Context) ([]entity.Supplier, []repository.FetchIssue) {
	return f.suppliers, nil
}
func (f *fakeSource) ProductSuppliers(context.Context) ([]entity.ProductSupplier, []repository.FetchIssue) {
	return f.productSuppliers, nil
}
func (f *fakeSource) Salesmen(context.Context) ([]entity.Salesman, []repository.FetchIssue) {
	return f.salesmen, nil
}
func (f *fakeSource) Divisions(context.Context) ([]entity.Division, []repository.FetchIssue) {
	return f.divisions, nil
}
func (f *fakeSource) Customers(context.Context) ([]entity.Customer, []repository.FetchIssue) {
	return f.customers, nil
}

func (f *fakeSource) Invoices(context.Context, time.Time, time.Time) ([]entity.Invoice, []repository.FetchIssue) {
	return f.invoices, nil
}
func (f *fakeSource) InvoiceItems(context.Context) ([]entity.InvoiceItem, []repository.FetchIssue) {
	return f.invoiceItems, nil
}
func (f *fakeSource) SalesReturns(context.Context, time.Time, time.Time) ([]entity.SalesReturn, []repository.FetchIssue) {
	return f.returns, nil
}
func (f *fakeSource) SalesReturnItems(context.Context) ([]entity.SalesReturnItem, []repository.FetchIssue) {
	return f.returnItems, nil
}
func (f *fakeSource) Collections(context.Context, time.Time, time.Time) ([]entity.Collection, []repository.FetchIssue) {
	return f.collections, nil
}

func (f *fakeSource) StockMovements(context.Context, time.Time, time.Time) ([]entity.StockMovement, []repository.FetchIssue) {
	return f.movements, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// baseFixture catálogo mínimo: un fideo Lucky Me (Dry Goods), un hotdog
// Magnolia (Frozen Goods), un vendedor por división y dos clientes.
func baseFixture() *fakeSource {
	return &fakeSource{
		products: []entity.Product{
			{ID: "p1", Name: "Lucky Me Pancit Canton", BrandID: "b1", SectionID: "sec1", UnitCost: dec("8.50"), StockOnHand: dec("100")},
			{ID: "p2", Name: "Magnolia Chicken Hotdog", BrandID: "b2", SectionID: "sec2", UnitCost: dec("120"), StockOnHand: dec("40")},
		},
		brands: []entity.Brand{
			{ID: "b1", Name: "Lucky Me"},
			{ID: "b2", Name: "Magnolia"},
		},
		sections: []entity.Section{
			{ID: "sec1", Name: "Grocery"},
			{ID: "sec2", Name: "Frozen Section"},
		},
		suppliers: []entity.Supplier{
			{ID: "sup1", Name: "Monde Nissin Corp"},
			{ID: "sup2", Name: "San Miguel Foods"},
		},
		productSuppliers: []entity.ProductSupplier{
			{TieBreakID: 1, ProductID: "p1", SupplierID: "sup1"},
			{TieBreakID: 2, ProductID: "p2", SupplierID: "sup2"},
		},
		salesmen: []entity.Salesman{
			{ID: "sm1", Name: "Pedro Reyes", DivisionID: "d1"},
			{ID: "sm2", Name: "Ana Cruz", DivisionID: "d2"},
		},
		divisions: []entity.Division{
			{ID: "d1", Name: "Dry Goods"},
			{ID: "d2", Name: "Frozen Goods"},
		},
		customers: []entity.Customer{
			{Code: "c1", StoreName: "Aling Nena Store", StoreType: "sari-sari"},
			{Code: "c2", StoreName: "Walk-In Customer", StoreType: "walk-in"},
		},
	}
}

func loadFixture(f *fakeSource, from, to time.Time, withStock bool) (*Dataset, *Lookups) {
	var stock repository.StockSource
	if withStock {
		stock = f
	}
	ds := LoadDataset(context.Background(), f, f, stock, from, to)
	return ds, BuildLookups(ds)
}
