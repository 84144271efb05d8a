package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection registro de cobranza (pago recaudado por un vendedor).
// IsCancelled ya viene normalizado desde la capa de infraestructura: el store
// lo codifica como bool, entero, string o buffer binario.
type Collection struct {
	ID          string
	Date        time.Time
	SalesmanID  string
	Amount      decimal.Decimal
	IsCancelled bool
}
