package dto

import "github.com/shopspring/decimal"

// ManagerRequest parámetros de GET /api/dashboard/manager.
// Type selecciona el sub-recurso: "velocity" (default) o "returns".
type ManagerRequest struct {
	FromDate string `query:"fromDate"`
	ToDate   string `query:"toDate"`
	Division string `query:"division"`
	Type     string `query:"type"`
}

// ProductVelocityDTO velocidad de rotación por producto maestro.
// velocityRate = salidas / (salidas + stock actual) × 100.
type ProductVelocityDTO struct {
	Product      string          `json:"product"`
	Division     string          `json:"division"`
	Inflow       decimal.Decimal `json:"inflow"`
	Outflow      decimal.Decimal `json:"outflow"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	VelocityRate decimal.Decimal `json:"velocityRate"`
	Status       string          `json:"status"` // Fast Moving | Healthy | Slow Moving | Stagnant
}

// DivisionReturnRateDTO tasa de devolución de mercancía por división.
// returnRate = entradas de bad stock / salidas de good stock × 100.
type DivisionReturnRateDTO struct {
	Division      string          `json:"division"`
	BadStockIn    decimal.Decimal `json:"badStockIn"`
	GoodStockOut  decimal.Decimal `json:"goodStockOut"`
	ReturnRatePct decimal.Decimal `json:"returnRate"`
	Status        string          `json:"status"` // Critical | High | Normal | Excellent
}

// ManagerDashboardDTO respuesta de GET /api/dashboard/manager.
// Según Type se llena StockVelocity o ReturnRates; el otro queda vacío.
type ManagerDashboardDTO struct {
	Period        PeriodDTO               `json:"period"`
	KPI           KPIDTO                  `json:"kpi"`
	StockVelocity []ProductVelocityDTO    `json:"stockVelocity,omitempty"`
	ReturnRates   []DivisionReturnRateDTO `json:"returnRates,omitempty"`
	Debug         DebugDTO                `json:"_debug"`
}
