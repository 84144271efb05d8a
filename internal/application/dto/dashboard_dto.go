package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// DashboardRequest parámetros comunes de los endpoints de dashboard.
// Las fechas aceptan YYYY-MM-DD o MM/DD/YYYY y se normalizan; division admite
// el literal "all" (sin filtro).
type DashboardRequest struct {
	FromDate string `query:"fromDate"` // default: primer día del mes actual
	ToDate   string `query:"toDate"`   // default: hoy
	Division string `query:"division"` // nombre de división o "all"
}

// ── KPIs ──────────────────────────────────────────────────────────────────────

// KPIDTO indicadores del encabezado del dashboard.
// netSales = ventas brutas − devoluciones; los porcentajes valen 0 cuando el
// denominador no es positivo (nunca dividimos por cero ni devolvemos null).
type KPIDTO struct {
	GrossSales        decimal.Decimal `json:"grossSales"`
	Returns           decimal.Decimal `json:"returns"`
	NetSales          decimal.Decimal `json:"netSales"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossMarginPct    decimal.Decimal `json:"grossMargin"`    // (netSales − cogs) / netSales × 100
	Collections       decimal.Decimal `json:"collections"`
	CollectionRatePct decimal.Decimal `json:"collectionRate"` // collections / netSales × 100
	InvoiceCount      int             `json:"invoiceCount"`
}

// ── Series y rankings ─────────────────────────────────────────────────────────

// DivisionSalesDTO venta neta (neta de devoluciones) por división.
type DivisionSalesDTO struct {
	Division string          `json:"division"`
	NetSales decimal.Decimal `json:"netSales"`
}

// TrendPointDTO punto mensual de la serie de ventas. Date con forma "2024-01".
type TrendPointDTO struct {
	Date     string          `json:"date"`
	NetSales decimal.Decimal `json:"netSales"`
}

// SupplierSalesDTO venta neta por proveedor dentro de una división (gráfico de barras).
type SupplierSalesDTO struct {
	Supplier string          `json:"supplier"`
	Total    decimal.Decimal `json:"total"`
}

// HeatmapRowDTO fila del heatmap proveedor × mes dentro de una división.
// Months es rectangular: contiene TODOS los meses del rango consultado,
// con 0 donde no hubo venta.
type HeatmapRowDTO struct {
	Supplier string                     `json:"supplier"`
	Total    decimal.Decimal            `json:"total"`
	Months   map[string]decimal.Decimal `json:"months"`
}

// TopProductDTO ranking de productos maestros por venta neta.
type TopProductDTO struct {
	Product  string          `json:"product"`
	NetSales decimal.Decimal `json:"netSales"`
	Quantity decimal.Decimal `json:"quantity"`
}

// TopSupplierDTO ranking de proveedores por venta neta.
type TopSupplierDTO struct {
	Supplier string          `json:"supplier"`
	NetSales decimal.Decimal `json:"netSales"`
}

// ── Respuesta ejecutiva ───────────────────────────────────────────────────────

// ExecutiveDashboardDTO respuesta de GET /api/dashboard/executive.
// Los nombres de campo son contrato con la UI; no renombrar.
type ExecutiveDashboardDTO struct {
	Period                  PeriodDTO                     `json:"period"`
	KPI                     KPIDTO                        `json:"kpi"`
	DivisionSales           []DivisionSalesDTO            `json:"divisionSales"`
	SalesTrend              []TrendPointDTO               `json:"salesTrend"`
	SupplierSalesByDivision map[string][]SupplierSalesDTO `json:"supplierSalesByDivision"`
	HeatmapDataByDivision   map[string][]HeatmapRowDTO    `json:"heatmapDataByDivision"`
	TopProducts             []TopProductDTO               `json:"topProducts"`
	TopSuppliers            []TopSupplierDTO              `json:"topSuppliers"`
	Debug                   DebugDTO                      `json:"_debug"`
}
