package analytics

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain/division"
	"salesbi-api/internal/domain/entity"
)

// Sub-recursos de la vista de manager.
const (
	ManagerTypeVelocity = "velocity"
	ManagerTypeReturns  = "returns"
)

const velocityRowsN = 50

// Manager arma la vista de bodega: KPIs de venta más velocidad de rotación
// por producto maestro o tasas de devolución de mercancía por división, según
// el parámetro type.
func (s *Service) Manager(ctx context.Context, req dto.ManagerRequest) (*dto.ManagerDashboardDTO, error) {
	from, to, err := ParsePeriod(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	ds := LoadDataset(ctx, s.catalog, s.sales, s.stock, from, to)
	lk := BuildLookups(ds)
	p := Params{From: from, To: to, Division: req.Division}
	t := Aggregate(ds, lk, p)

	out := &dto.ManagerDashboardDTO{
		Period: periodDTO(from, to),
		KPI:    BuildKPI(t),
		Debug:  debugDTO(ds),
	}

	switch strings.ToLower(req.Type) {
	case ManagerTypeReturns:
		out.ReturnRates = returnRates(ds.StockMovements, lk, p)
	default:
		out.StockVelocity = stockVelocity(ds.StockMovements, lk, p)
	}

	s.log.Debug().
		Str("type", req.Type).
		Int("movements", len(ds.StockMovements)).
		Int("issues", len(ds.Issues)).
		Msg("vista de manager agregada")

	return out, nil
}

type velocityAcc struct {
	inflow  decimal.Decimal
	outflow decimal.Decimal
	div     string
}

// stockVelocity rotación por producto maestro a partir de los movimientos del
// rango. velocityRate = salidas / (salidas + stock actual) × 100.
func stockVelocity(moves []entity.StockMovement, lk *Lookups, p Params) []dto.ProductVelocityDTO {
	acc := make(map[string]*velocityAcc)
	for _, m := range moves {
		div := division.Classify(lk.ProductInfo(m.ProductID), "", division.ModeFull)
		if !p.matchesDivision(div) {
			continue
		}
		master := lk.Master(m.ProductID)
		a, ok := acc[master]
		if !ok {
			a = &velocityAcc{div: div}
			acc[master] = a
		}
		switch m.Direction {
		case entity.StockIn:
			a.inflow = a.inflow.Add(m.Quantity)
		case entity.StockOut:
			a.outflow = a.outflow.Add(m.Quantity)
		}
	}

	// El stock actual se suma sobre todas las variantes del maestro.
	stockByMaster := make(map[string]decimal.Decimal)
	for _, prod := range lk.ProductByID {
		master := lk.Master(prod.ID)
		stockByMaster[master] = stockByMaster[master].Add(prod.StockOnHand)
	}

	out := make([]dto.ProductVelocityDTO, 0, len(acc))
	for master, a := range acc {
		stock := stockByMaster[master]
		rate := pct(a.outflow, a.outflow.Add(stock))
		out = append(out, dto.ProductVelocityDTO{
			Product:      lk.ProductLabel(master),
			Division:     a.div,
			Inflow:       round2(a.inflow),
			Outflow:      round2(a.outflow),
			CurrentStock: round2(stock),
			VelocityRate: rate,
			Status:       velocityStatus(rate),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].VelocityRate.Cmp(out[j].VelocityRate); c != 0 {
			return c > 0
		}
		return out[i].Product < out[j].Product
	})
	if len(out) > velocityRowsN {
		out = out[:velocityRowsN]
	}
	return out
}

func velocityStatus(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThan(decimal.NewFromInt(50)):
		return "Fast Moving"
	case rate.GreaterThan(decimal.NewFromInt(20)):
		return "Healthy"
	case rate.GreaterThan(decimal.NewFromInt(5)):
		return "Slow Moving"
	default:
		return "Stagnant"
	}
}

// returnRates tasa de devolución de mercancía por división:
// entradas de bad stock contra salidas de good stock.
func returnRates(moves []entity.StockMovement, lk *Lookups, p Params) []dto.DivisionReturnRateDTO {
	type rateAcc struct {
		badIn   decimal.Decimal
		goodOut decimal.Decimal
	}
	acc := make(map[string]*rateAcc)
	for _, m := range moves {
		div := division.Classify(lk.ProductInfo(m.ProductID), "", division.ModeFull)
		if !p.matchesDivision(div) {
			continue
		}
		a, ok := acc[div]
		if !ok {
			a = &rateAcc{}
			acc[div] = a
		}
		if m.Direction == entity.StockIn && m.Condition == entity.StockBad {
			a.badIn = a.badIn.Add(m.Quantity)
		}
		if m.Direction == entity.StockOut && m.Condition == entity.StockGood {
			a.goodOut = a.goodOut.Add(m.Quantity)
		}
	}

	out := make([]dto.DivisionReturnRateDTO, 0, len(acc))
	for div, a := range acc {
		rate := pct(a.badIn, a.goodOut)
		out = append(out, dto.DivisionReturnRateDTO{
			Division:      div,
			BadStockIn:    round2(a.badIn),
			GoodStockOut:  round2(a.goodOut),
			ReturnRatePct: rate,
			Status:        returnRateStatus(rate),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].ReturnRatePct.Cmp(out[j].ReturnRatePct); c != 0 {
			return c > 0
		}
		return out[i].Division < out[j].Division
	})
	return out
}

func returnRateStatus(rate decimal.Decimal) string {
	switch {
	case rate.GreaterThan(decimal.NewFromInt(50)):
		return "Critical"
	case rate.GreaterThan(decimal.NewFromInt(20)):
		return "High"
	case rate.GreaterThan(decimal.NewFromInt(5)):
		return "Normal"
	default:
		return "Excellent"
	}
}
