package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura de venta leída del item store.
// Snapshot de solo lectura: el core nunca muta ni persiste estas entidades.
type Invoice struct {
	ID           string
	OrderID      string // id del pedido de origen; forma parte de la llave de cruce con devoluciones
	InvoiceNo    string // número impreso de la factura
	Date         time.Time
	SalesmanID   string
	CustomerCode string
	TotalAmount  decimal.Decimal
}

// InvoiceItem representa una línea de detalle de una factura (N:1 con Invoice).
type InvoiceItem struct {
	ID             string
	InvoiceID      string
	ProductID      string
	Quantity       decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	UnitPrice      decimal.Decimal
}
