package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo remoto.
// ParentID apunta al producto "maestro" al que consolida la variante;
// vacío o "0" significa que el producto es su propio maestro.
type Product struct {
	ID          string
	Name        string
	ParentID    string
	BrandID     string
	SectionID   string
	UnitCost    decimal.Decimal
	StockOnHand decimal.Decimal // existencia actual; insumo del reporte de velocidad de inventario
}

// Brand marca comercial de un producto.
type Brand struct {
	ID   string
	Name string
}

// Section sección/categoría de góndola de un producto.
type Section struct {
	ID   string
	Name string
}

// Supplier proveedor.
type Supplier struct {
	ID   string
	Name string
}

// ProductSupplier fila de mapeo producto↔proveedor.
// TieBreakID desempata duplicados: se ordena ascendente y gana la primera fila
// por producto (id faltante se trata como 0).
type ProductSupplier struct {
	TieBreakID int64
	ProductID  string
	SupplierID string
}
