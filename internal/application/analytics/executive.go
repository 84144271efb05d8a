package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain/repository"
)

const (
	topSuppliersN = 10
	topProductsN  = 50
)

const emptyDatasetMsg = "no data returned from item store for the requested period"

// Service orquesta el pipeline completo de cada vista: carga del snapshot,
// lookups, agregación y formateo. No guarda estado entre requests.
type Service struct {
	catalog repository.CatalogSource
	sales   repository.SalesSource
	stock   repository.StockSource
	log     zerolog.Logger
}

func NewService(catalog repository.CatalogSource, sales repository.SalesSource, stock repository.StockSource, log zerolog.Logger) *Service {
	return &Service{catalog: catalog, sales: sales, stock: stock, log: log}
}

func periodDTO(from, to time.Time) dto.PeriodDTO {
	return dto.PeriodDTO{
		FromDate: from.Format(dateLayout),
		ToDate:   to.Format(dateLayout),
	}
}

func debugDTO(ds *Dataset) dto.DebugDTO {
	d := dto.DebugDTO{Errors: ds.Issues}
	if ds.Empty() {
		d.Error = emptyDatasetMsg
	}
	return d
}

// Executive arma la vista ejecutiva: KPIs globales, ventas por división,
// tendencia mensual, proveedores y rankings. Nunca devuelve error por datos
// degradados; esos casos llegan como _debug en una respuesta 200.
func (s *Service) Executive(ctx context.Context, req dto.DashboardRequest) (*dto.ExecutiveDashboardDTO, error) {
	from, to, err := ParsePeriod(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	ds := LoadDataset(ctx, s.catalog, s.sales, nil, from, to)
	lk := BuildLookups(ds)
	p := Params{From: from, To: to, Division: req.Division}
	t := Aggregate(ds, lk, p)

	s.log.Debug().
		Str("division", req.Division).
		Int("invoices", len(ds.Invoices)).
		Int("issues", len(ds.Issues)).
		Msg("vista ejecutiva agregada")

	return &dto.ExecutiveDashboardDTO{
		Period:                  periodDTO(from, to),
		KPI:                     BuildKPI(t),
		DivisionSales:           DivisionSales(t, p),
		SalesTrend:              SalesTrend(t),
		SupplierSalesByDivision: SupplierSalesByDivision(t, topSuppliersN),
		HeatmapDataByDivision:   Heatmap(t),
		TopProducts:             TopProducts(t, topProductsN),
		TopSuppliers:            TopSuppliers(t, topSuppliersN),
		Debug:                   debugDTO(ds),
	}, nil
}
