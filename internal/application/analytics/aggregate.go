package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salesbi-api/internal/domain/division"
	"salesbi-api/internal/domain/entity"
)

// Params configura una pasada del motor de agregación. El mismo motor sirve
// a las tres vistas (executive, manager, divisionhead); cada una solo cambia
// los filtros y qué parte del resultado formatea.
type Params struct {
	From, To   time.Time
	Division   string // nombre de división, "" o "all" = sin filtro
	SalesmanID string // "" = todos los vendedores
}

func (p Params) filtersDivision() bool {
	return p.Division != "" && !strings.EqualFold(p.Division, "all")
}

func (p Params) matchesDivision(div string) bool {
	return !p.filtersDivision() || strings.EqualFold(p.Division, div)
}

// ProductTotal acumulado por producto maestro.
type ProductTotal struct {
	Name string
	Net  decimal.Decimal
	Qty  decimal.Decimal
}

// SalesmanTotal acumulado por vendedor.
type SalesmanTotal struct {
	Name        string
	Division    string
	Net         decimal.Decimal
	Collections decimal.Decimal
}

// Totals resultado crudo de una pasada de agregación. Todos los montos son
// netos de descuento y de la devolución casada por línea; el bucket de
// devoluciones se resta por división al formatear (neto de devoluciones).
type Totals struct {
	Months []string // meses del rango, base de la rectangularidad

	Grand        decimal.Decimal
	InvoiceCount int

	ByMonth        map[string]decimal.Decimal
	ByDivision     map[string]decimal.Decimal
	COGS           decimal.Decimal
	COGSByDivision map[string]decimal.Decimal

	// Heat: división → proveedor → mes. SupplierByDivision: división → proveedor.
	Heat               map[string]map[string]map[string]decimal.Decimal
	SupplierByDivision map[string]map[string]decimal.Decimal

	ByProduct  map[string]*ProductTotal // clave: producto maestro
	ByCustomer map[string]decimal.Decimal
	BySalesman map[string]*SalesmanTotal

	ReturnsTotal      decimal.Decimal
	ReturnsByDivision map[string]decimal.Decimal

	CollectionsTotal      decimal.Decimal
	CollectionsByDivision map[string]decimal.Decimal
}

type returnAmount struct {
	total    decimal.Decimal
	discount decimal.Decimal
}

func retKey(orderID, invoiceNo, masterProduct string) string {
	return orderID + "|" + invoiceNo + "|" + masterProduct
}

// Aggregate recorre el snapshot y pliega cada línea en los acumulados.
// Totalidad por diseño: toda línea legible resuelve división y mes; campos
// ilegibles ya valen 0 desde la capa de infraestructura.
func Aggregate(ds *Dataset, lk *Lookups, p Params) *Totals {
	t := &Totals{
		Months:                MonthsInRange(p.From, p.To),
		ByMonth:               make(map[string]decimal.Decimal),
		ByDivision:            make(map[string]decimal.Decimal),
		COGSByDivision:        make(map[string]decimal.Decimal),
		Heat:                  make(map[string]map[string]map[string]decimal.Decimal),
		SupplierByDivision:    make(map[string]map[string]decimal.Decimal),
		ByProduct:             make(map[string]*ProductTotal),
		ByCustomer:            make(map[string]decimal.Decimal),
		BySalesman:            make(map[string]*SalesmanTotal),
		ReturnsByDivision:     make(map[string]decimal.Decimal),
		CollectionsByDivision: make(map[string]decimal.Decimal),
	}

	invoiceByID := make(map[string]entity.Invoice, len(ds.Invoices))
	for _, inv := range ds.Invoices {
		invoiceByID[inv.ID] = inv
	}

	// Índice de devoluciones por llave compuesta (pedido, factura, maestro).
	// Detalles cuya cabecera no llegó (huérfanos) se ignoran por completo.
	returnByID := make(map[string]entity.SalesReturn, len(ds.Returns))
	for _, r := range ds.Returns {
		returnByID[r.ID] = r
	}
	retIdx := make(map[string]*returnAmount)
	for _, item := range ds.ReturnItems {
		hdr, ok := returnByID[item.ReturnID]
		if !ok {
			continue
		}
		key := retKey(hdr.OrderID, hdr.InvoiceNo, lk.Master(item.ProductID))
		acc, ok := retIdx[key]
		if !ok {
			acc = &returnAmount{}
			retIdx[key] = acc
		}
		acc.total = acc.total.Add(item.TotalAmount)
		acc.discount = acc.discount.Add(item.DiscountAmount)
	}

	// ── Ventas ────────────────────────────────────────────────────────────────
	seenInvoices := make(map[string]bool)
	for _, item := range ds.InvoiceItems {
		inv, ok := invoiceByID[item.InvoiceID]
		if !ok {
			continue // línea huérfana: la cabecera no cargó o quedó fuera de rango
		}
		if inv.Date.Before(p.From) || inv.Date.After(p.To) {
			continue
		}
		if p.SalesmanID != "" && inv.SalesmanID != p.SalesmanID {
			continue
		}

		customer := lk.CustomerName[inv.CustomerCode]
		info := lk.ProductInfo(item.ProductID)
		div := division.Classify(info, customer, division.ModeFull)
		if !p.matchesDivision(div) {
			continue
		}

		master := lk.Master(item.ProductID)

		// La devolución casada se consume una sola vez: si la factura repite
		// el mismo maestro en varias líneas no se resta por duplicado.
		var retNet decimal.Decimal
		if acc, ok := retIdx[retKey(inv.OrderID, inv.InvoiceNo, master)]; ok {
			retNet = acc.total.Sub(acc.discount)
			delete(retIdx, retKey(inv.OrderID, inv.InvoiceNo, master))
		}

		net := item.TotalAmount.Sub(item.DiscountAmount).Sub(retNet)
		month := inv.Date.Format(monthLayout)

		t.Grand = t.Grand.Add(net)
		t.ByMonth[month] = t.ByMonth[month].Add(net)
		t.ByDivision[div] = t.ByDivision[div].Add(net)

		// COGS con cantidad neta estimada: si no hay cantidad exacta devuelta,
		// se aproxima con valor devuelto ÷ precio unitario.
		returnedQty := decimal.Zero
		if retNet.IsPositive() && item.UnitPrice.IsPositive() {
			returnedQty = retNet.Div(item.UnitPrice)
		}
		netQty := item.Quantity.Sub(returnedQty)
		cogs := lk.ProductByID[item.ProductID].UnitCost.Mul(netQty)
		t.COGS = t.COGS.Add(cogs)
		t.COGSByDivision[div] = t.COGSByDivision[div].Add(cogs)

		if !seenInvoices[inv.ID] {
			seenInvoices[inv.ID] = true
			t.InvoiceCount++
		}

		// Política explícita: las líneas con neto 0 cuentan en los totales de
		// arriba pero no inflan la cardinalidad de gráficos ni rankings.
		if net.IsZero() {
			continue
		}

		supplier := lk.SupplierLabel(item.ProductID)

		if t.Heat[div] == nil {
			t.Heat[div] = make(map[string]map[string]decimal.Decimal)
		}
		if t.Heat[div][supplier] == nil {
			t.Heat[div][supplier] = make(map[string]decimal.Decimal)
		}
		t.Heat[div][supplier][month] = t.Heat[div][supplier][month].Add(net)

		if t.SupplierByDivision[div] == nil {
			t.SupplierByDivision[div] = make(map[string]decimal.Decimal)
		}
		t.SupplierByDivision[div][supplier] = t.SupplierByDivision[div][supplier].Add(net)

		pt, ok := t.ByProduct[master]
		if !ok {
			pt = &ProductTotal{Name: lk.ProductLabel(item.ProductID)}
			t.ByProduct[master] = pt
		}
		pt.Net = pt.Net.Add(net)
		pt.Qty = pt.Qty.Add(netQty)

		customerLabel := customer
		if customerLabel == "" {
			customerLabel = inv.CustomerCode
		}
		if customerLabel != "" {
			t.ByCustomer[customerLabel] = t.ByCustomer[customerLabel].Add(net)
		}

		if inv.SalesmanID != "" {
			st, ok := t.BySalesman[inv.SalesmanID]
			if !ok {
				st = &SalesmanTotal{
					Name:     lk.SalesmanName[inv.SalesmanID],
					Division: lk.SalesmanDivisionName(inv.SalesmanID),
				}
				t.BySalesman[inv.SalesmanID] = st
			}
			st.Net = st.Net.Add(net)
		}
	}

	// ── Devoluciones (bucket independiente, cascade reducido) ────────────────
	for _, item := range ds.ReturnItems {
		if _, ok := returnByID[item.ReturnID]; !ok {
			continue // huérfana: aporta 0 a todo agregado
		}
		info := lk.ProductInfo(item.ProductID)
		div := division.Classify(info, "", division.ModeRulesOnly)
		if !p.matchesDivision(div) {
			continue
		}
		amt := item.TotalAmount.Sub(item.DiscountAmount)
		t.ReturnsTotal = t.ReturnsTotal.Add(amt)
		t.ReturnsByDivision[div] = t.ReturnsByDivision[div].Add(amt)
	}

	// ── Cobranzas ────────────────────────────────────────────────────────────
	for _, c := range ds.Collections {
		if c.IsCancelled {
			continue
		}
		if c.Date.IsZero() || c.Date.Before(p.From) || c.Date.After(p.To) {
			continue
		}
		if p.SalesmanID != "" && c.SalesmanID != p.SalesmanID {
			continue
		}
		div := lk.SalesmanDivisionName(c.SalesmanID)
		if !p.matchesDivision(div) {
			continue
		}
		t.CollectionsTotal = t.CollectionsTotal.Add(c.Amount)
		t.CollectionsByDivision[div] = t.CollectionsByDivision[div].Add(c.Amount)

		if st, ok := t.BySalesman[c.SalesmanID]; ok {
			st.Collections = st.Collections.Add(c.Amount)
		} else if c.SalesmanID != "" {
			t.BySalesman[c.SalesmanID] = &SalesmanTotal{
				Name:        lk.SalesmanName[c.SalesmanID],
				Division:    div,
				Collections: c.Amount,
			}
		}
	}

	return t
}
