package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReturn representa la cabecera de una devolución de venta.
// Se cruza con facturas por la llave compuesta (OrderID, InvoiceNo, producto maestro).
type SalesReturn struct {
	ID        string
	OrderID   string
	InvoiceNo string
	Date      time.Time
}

// SalesReturnItem línea de detalle de una devolución.
// Una línea cuya cabecera no existe (huérfana) se ignora en toda agregación.
type SalesReturnItem struct {
	ID             string
	ReturnID       string
	ProductID      string
	Quantity       decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
}
