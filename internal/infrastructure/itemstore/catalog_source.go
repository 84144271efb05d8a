package itemstore

import (
	"context"

	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
)

// CatalogSource adaptador de las colecciones de catálogo del item store.
// Filas sin id (o malformadas) se descartan en silencio: el builder de lookups
// aguas arriba nunca debe fallar por una fila sucia.
type CatalogSource struct {
	client *Client
}

// NewCatalogSource construye el adaptador.
func NewCatalogSource(client *Client) *CatalogSource {
	return &CatalogSource{client: client}
}

func (s *CatalogSource) Products(ctx context.Context) ([]entity.Product, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "product",
		Fields:     []string{"id", "name", "parent_id", "brand_id", "section_id", "unit_cost", "stock_on_hand"},
	})
	out := make([]entity.Product, 0, len(records))
	for _, r := range records {
		id := r.Ref("id")
		if id == "" {
			continue
		}
		out = append(out, entity.Product{
			ID:          id,
			Name:        r.Str("name"),
			ParentID:    r.Ref("parent_id"), // "" si no tiene maestro (0/null)
			BrandID:     r.Ref("brand_id"),
			SectionID:   r.Ref("section_id"),
			UnitCost:    r.Dec("unit_cost"),
			StockOnHand: r.Dec("stock_on_hand"),
		})
	}
	return out, issues
}

func (s *CatalogSource) Brands(ctx context.Context) ([]entity.Brand, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "brand",
		Fields:     []string{"id", "name"},
	})
	out := make([]entity.Brand, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.Brand{ID: id, Name: r.Str("name")})
		}
	}
	return out, issues
}

func (s *CatalogSource) Sections(ctx context.Context) ([]entity.Section, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "section",
		Fields:     []string{"id", "name"},
	})
	out := make([]entity.Section, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.Section{ID: id, Name: r.Str("name")})
		}
	}
	return out, issues
}

func (s *CatalogSource) Suppliers(ctx context.Context) ([]entity.Supplier, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "supplier",
		Fields:     []string{"id", "name"},
	})
	out := make([]entity.Supplier, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.Supplier{ID: id, Name: r.Str("name")})
		}
	}
	return out, issues
}

func (s *CatalogSource) ProductSuppliers(ctx context.Context) ([]entity.ProductSupplier, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "product_supplier",
		Fields:     []string{"id", "product_id", "supplier_id"},
	})
	out := make([]entity.ProductSupplier, 0, len(records))
	for _, r := range records {
		productID := r.Ref("product_id")
		supplierID := r.Ref("supplier_id")
		if productID == "" || supplierID == "" {
			continue
		}
		out = append(out, entity.ProductSupplier{
			TieBreakID: r.Int64("id"), // id faltante vale 0: ver decisión en DESIGN.md
			ProductID:  productID,
			SupplierID: supplierID,
		})
	}
	return out, issues
}

func (s *CatalogSource) Salesmen(ctx context.Context) ([]entity.Salesman, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "salesman",
		Fields:     []string{"id", "name", "division_id"},
	})
	out := make([]entity.Salesman, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.Salesman{ID: id, Name: r.Str("name"), DivisionID: r.Ref("division_id")})
		}
	}
	return out, issues
}

func (s *CatalogSource) Divisions(ctx context.Context) ([]entity.Division, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "division",
		Fields:     []string{"id", "name"},
	})
	out := make([]entity.Division, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.Division{ID: id, Name: r.Str("name")})
		}
	}
	return out, issues
}

func (s *CatalogSource) Customers(ctx context.Context) ([]entity.Customer, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "customer",
		Fields:     []string{"code", "store_name", "store_type"},
	})
	out := make([]entity.Customer, 0, len(records))
	for _, r := range records {
		code := r.Str("code")
		if code == "" {
			continue
		}
		out = append(out, entity.Customer{Code: code, StoreName: r.Str("store_name"), StoreType: r.Str("store_type")})
	}
	return out, issues
}
