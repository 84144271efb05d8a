package itemstore

import (
	"context"
	"time"

	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SalesSource adaptador de las colecciones transaccionales (facturas,
// devoluciones, cobranzas). Las cabeceras se filtran por rango de fechas en el
// servidor; los detalles se traen completos y la agregación descarta huérfanos.
type SalesSource struct {
	client *Client
}

// NewSalesSource construye el adaptador.
func NewSalesSource(client *Client) *SalesSource {
	return &SalesSource{client: client}
}

func dateFilter(from, to time.Time) map[string]string {
	return map[string]string{
		"filter[date][_gte]": from.Format(dateLayout),
		"filter[date][_lte]": to.Format(dateLayout),
	}
}

func (s *SalesSource) Invoices(ctx context.Context, from, to time.Time) ([]entity.Invoice, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "invoice",
		Fields:     []string{"id", "order_id", "invoice_no", "date", "salesman_id", "customer_code", "total_amount"},
		Filter:     dateFilter(from, to),
	})
	out := make([]entity.Invoice, 0, len(records))
	for _, r := range records {
		id := r.Ref("id")
		date := r.Date("date")
		if id == "" || date.IsZero() {
			continue
		}
		out = append(out, entity.Invoice{
			ID:           id,
			OrderID:      r.Ref("order_id"),
			InvoiceNo:    r.Str("invoice_no"),
			Date:         date,
			SalesmanID:   r.Ref("salesman_id"),
			CustomerCode: r.Str("customer_code"),
			TotalAmount:  r.Dec("total_amount"),
		})
	}
	return out, issues
}

func (s *SalesSource) InvoiceItems(ctx context.Context) ([]entity.InvoiceItem, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "invoice_item",
		Fields:     []string{"id", "invoice_id", "product_id", "quantity", "total_amount", "discount_amount", "unit_price"},
	})
	out := make([]entity.InvoiceItem, 0, len(records))
	for _, r := range records {
		invoiceID := r.Ref("invoice_id")
		if invoiceID == "" {
			continue
		}
		out = append(out, entity.InvoiceItem{
			ID:             r.Ref("id"),
			InvoiceID:      invoiceID,
			ProductID:      r.Ref("product_id"),
			Quantity:       r.Dec("quantity"),
			TotalAmount:    r.Dec("total_amount"),
			DiscountAmount: r.Dec("discount_amount"),
			UnitPrice:      r.Dec("unit_price"),
		})
	}
	return out, issues
}

func (s *SalesSource) SalesReturns(ctx context.Context, from, to time.Time) ([]entity.SalesReturn, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "sales_return",
		Fields:     []string{"id", "order_id", "invoice_no", "date"},
		Filter:     dateFilter(from, to),
	})
	out := make([]entity.SalesReturn, 0, len(records))
	for _, r := range records {
		if id := r.Ref("id"); id != "" {
			out = append(out, entity.SalesReturn{
				ID:        id,
				OrderID:   r.Ref("order_id"),
				InvoiceNo: r.Str("invoice_no"),
				Date:      r.Date("date"),
			})
		}
	}
	return out, issues
}

func (s *SalesSource) SalesReturnItems(ctx context.Context) ([]entity.SalesReturnItem, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "sales_return_item",
		Fields:     []string{"id", "return_id", "product_id", "quantity", "total_amount", "discount_amount"},
	})
	out := make([]entity.SalesReturnItem, 0, len(records))
	for _, r := range records {
		returnID := r.Ref("return_id")
		if returnID == "" {
			continue
		}
		out = append(out, entity.SalesReturnItem{
			ID:             r.Ref("id"),
			ReturnID:       returnID,
			ProductID:      r.Ref("product_id"),
			Quantity:       r.Dec("quantity"),
			TotalAmount:    r.Dec("total_amount"),
			DiscountAmount: r.Dec("discount_amount"),
		})
	}
	return out, issues
}

func (s *SalesSource) Collections(ctx context.Context, from, to time.Time) ([]entity.Collection, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "collection",
		Fields:     []string{"id", "date", "salesman_id", "amount", "is_cancelled"},
		Filter:     dateFilter(from, to),
	})
	out := make([]entity.Collection, 0, len(records))
	for _, r := range records {
		id := r.Ref("id")
		if id == "" {
			continue
		}
		out = append(out, entity.Collection{
			ID:          id,
			Date:        r.Date("date"),
			SalesmanID:  r.Ref("salesman_id"),
			Amount:      r.Dec("amount"),
			IsCancelled: r.True("is_cancelled"), // bool/1/"1"/buffer: ver IsTrue
		})
	}
	return out, issues
}
