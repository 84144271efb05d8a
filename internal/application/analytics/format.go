package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain/division"
)

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// pct porcentaje num/den×100 con guardia: denominador no positivo → 0.
func pct(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred).Round(2)
}

// BuildKPI calcula el encabezado a partir de los acumulados ya filtrados.
func BuildKPI(t *Totals) dto.KPIDTO {
	net := t.Grand.Sub(t.ReturnsTotal)
	return dto.KPIDTO{
		GrossSales:        round2(t.Grand),
		Returns:           round2(t.ReturnsTotal),
		NetSales:          round2(net),
		COGS:              round2(t.COGS),
		GrossMarginPct:    pct(net.Sub(t.COGS), net),
		Collections:       round2(t.CollectionsTotal),
		CollectionRatePct: pct(t.CollectionsTotal, net),
		InvoiceCount:      t.InvoiceCount,
	}
}

// DivisionSales venta neta de devoluciones por división, descendente.
// Sin filtro activo se emiten TODAS las divisiones del negocio, con cero
// donde no hubo movimiento (rectangularidad también en esta dimensión).
func DivisionSales(t *Totals, p Params) []dto.DivisionSalesDTO {
	names := make(map[string]bool)
	if p.filtersDivision() {
		names[p.Division] = true
	} else {
		for _, d := range division.All {
			names[d] = true
		}
	}
	for d := range t.ByDivision {
		names[d] = true
	}
	for d := range t.ReturnsByDivision {
		names[d] = true
	}

	out := make([]dto.DivisionSalesDTO, 0, len(names))
	for d := range names {
		net := t.ByDivision[d].Sub(t.ReturnsByDivision[d])
		out = append(out, dto.DivisionSalesDTO{Division: d, NetSales: round2(net)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].NetSales.Cmp(out[j].NetSales); c != 0 {
			return c > 0
		}
		return out[i].Division < out[j].Division
	})
	return out
}

// SalesTrend serie mensual ascendente, rellenada a cero sobre todos los
// meses del rango.
func SalesTrend(t *Totals) []dto.TrendPointDTO {
	out := make([]dto.TrendPointDTO, 0, len(t.Months))
	for _, m := range t.Months {
		out = append(out, dto.TrendPointDTO{Date: m, NetSales: round2(t.ByMonth[m])})
	}
	return out
}

// SupplierSalesByDivision top proveedores por división para el gráfico de
// barras, descendente y truncado.
func SupplierSalesByDivision(t *Totals, topN int) map[string][]dto.SupplierSalesDTO {
	out := make(map[string][]dto.SupplierSalesDTO, len(t.SupplierByDivision))
	for div, suppliers := range t.SupplierByDivision {
		rows := make([]dto.SupplierSalesDTO, 0, len(suppliers))
		for s, v := range suppliers {
			rows = append(rows, dto.SupplierSalesDTO{Supplier: s, Total: round2(v)})
		}
		sortSupplierRows(rows)
		if len(rows) > topN {
			rows = rows[:topN]
		}
		out[div] = rows
	}
	return out
}

func sortSupplierRows(rows []dto.SupplierSalesDTO) {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Total.Cmp(rows[j].Total); c != 0 {
			return c > 0
		}
		return rows[i].Supplier < rows[j].Supplier
	})
}

// Heatmap filas proveedor×mes por división. Cada fila cubre todos los meses
// del rango con cero donde no hubo venta, así la grilla siempre es rectangular.
func Heatmap(t *Totals) map[string][]dto.HeatmapRowDTO {
	out := make(map[string][]dto.HeatmapRowDTO, len(t.Heat))
	for div, suppliers := range t.Heat {
		rows := make([]dto.HeatmapRowDTO, 0, len(suppliers))
		for s, byMonth := range suppliers {
			row := dto.HeatmapRowDTO{
				Supplier: s,
				Months:   make(map[string]decimal.Decimal, len(t.Months)),
			}
			total := decimal.Zero
			for _, m := range t.Months {
				v := byMonth[m]
				row.Months[m] = round2(v)
				total = total.Add(v)
			}
			row.Total = round2(total)
			rows = append(rows, row)
		}
		sort.SliceStable(rows, func(i, j int) bool {
			if c := rows[i].Total.Cmp(rows[j].Total); c != 0 {
				return c > 0
			}
			return rows[i].Supplier < rows[j].Supplier
		})
		out[div] = rows
	}
	return out
}

// TopProducts ranking de productos maestros por venta neta, truncado.
func TopProducts(t *Totals, topN int) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(t.ByProduct))
	for _, pt := range t.ByProduct {
		out = append(out, dto.TopProductDTO{
			Product:  pt.Name,
			NetSales: round2(pt.Net),
			Quantity: round2(pt.Qty),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].NetSales.Cmp(out[j].NetSales); c != 0 {
			return c > 0
		}
		return out[i].Product < out[j].Product
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// TopSuppliers ranking global de proveedores, sumado sobre divisiones.
func TopSuppliers(t *Totals, topN int) []dto.TopSupplierDTO {
	acc := make(map[string]decimal.Decimal)
	for _, suppliers := range t.SupplierByDivision {
		for s, v := range suppliers {
			acc[s] = acc[s].Add(v)
		}
	}
	out := make([]dto.TopSupplierDTO, 0, len(acc))
	for s, v := range acc {
		out = append(out, dto.TopSupplierDTO{Supplier: s, NetSales: round2(v)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].NetSales.Cmp(out[j].NetSales); c != 0 {
			return c > 0
		}
		return out[i].Supplier < out[j].Supplier
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// SalesmanPerformance desempeño por vendedor, descendente por venta neta.
func SalesmanPerformance(t *Totals) []dto.SalesmanPerformanceDTO {
	out := make([]dto.SalesmanPerformanceDTO, 0, len(t.BySalesman))
	for id, st := range t.BySalesman {
		name := st.Name
		if name == "" {
			name = "Salesman " + id
		}
		out = append(out, dto.SalesmanPerformanceDTO{
			SalesmanID:        id,
			Salesman:          name,
			Division:          st.Division,
			NetSales:          round2(st.Net),
			Collections:       round2(st.Collections),
			CollectionRatePct: pct(st.Collections, st.Net),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].NetSales.Cmp(out[j].NetSales); c != 0 {
			return c > 0
		}
		return out[i].Salesman < out[j].Salesman
	})
	return out
}
