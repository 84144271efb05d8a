package dto

import "github.com/shopspring/decimal"

// DivisionHeadRequest parámetros de GET /api/dashboard/divisionhead.
// ActiveTab es el equivalente del filtro de división en pestañas; SalesmanID
// acota el tablero a un solo vendedor.
type DivisionHeadRequest struct {
	FromDate   string `query:"fromDate"`
	ToDate     string `query:"toDate"`
	SalesmanID string `query:"salesmanId"`
	ActiveTab  string `query:"activeTab"`
}

// SalesmanPerformanceDTO desempeño de un vendedor en el período.
type SalesmanPerformanceDTO struct {
	SalesmanID        string          `json:"salesmanId"`
	Salesman          string          `json:"salesman"`
	Division          string          `json:"division"`
	NetSales          decimal.Decimal `json:"netSales"`
	Collections       decimal.Decimal `json:"collections"`
	CollectionRatePct decimal.Decimal `json:"collectionRate"`
}

// DivisionHeadDashboardDTO respuesta de GET /api/dashboard/divisionhead.
type DivisionHeadDashboardDTO struct {
	Period        PeriodDTO                `json:"period"`
	KPI           KPIDTO                   `json:"kpi"`
	Salesmen      []SalesmanPerformanceDTO `json:"salesmen"`
	DivisionSales []DivisionSalesDTO       `json:"divisionSales"`
	SalesTrend    []TrendPointDTO          `json:"salesTrend"`
	Debug         DebugDTO                 `json:"_debug"`
}
