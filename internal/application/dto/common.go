package dto

import "salesbi-api/internal/domain/repository"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"error"`
}

// DebugDTO diagnóstico adjunto a cada respuesta de dashboard.
// Errors acumula los fetchs degradados; Error describe un vacío total
// (todas las colecciones llegaron vacías) que aun así responde HTTP 200.
type DebugDTO struct {
	Errors []repository.FetchIssue `json:"errors,omitempty"`
	Error  string                  `json:"error,omitempty"`
}

// PeriodDTO rango de fechas normalizado del reporte.
type PeriodDTO struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}
