package analytics

import (
	"context"

	"salesbi-api/internal/application/dto"
)

// DivisionHead arma el tablero del jefe de división: desempeño por vendedor
// más las series de venta, acotado por pestaña activa (división) y
// opcionalmente por un vendedor puntual.
func (s *Service) DivisionHead(ctx context.Context, req dto.DivisionHeadRequest) (*dto.DivisionHeadDashboardDTO, error) {
	from, to, err := ParsePeriod(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	ds := LoadDataset(ctx, s.catalog, s.sales, nil, from, to)
	lk := BuildLookups(ds)
	p := Params{From: from, To: to, Division: req.ActiveTab, SalesmanID: req.SalesmanID}
	t := Aggregate(ds, lk, p)

	s.log.Debug().
		Str("activeTab", req.ActiveTab).
		Str("salesmanId", req.SalesmanID).
		Int("issues", len(ds.Issues)).
		Msg("vista de jefe de división agregada")

	return &dto.DivisionHeadDashboardDTO{
		Period:        periodDTO(from, to),
		KPI:           BuildKPI(t),
		Salesmen:      SalesmanPerformance(t),
		DivisionSales: DivisionSales(t, p),
		SalesTrend:    SalesTrend(t),
		Debug:         debugDTO(ds),
	}, nil
}
