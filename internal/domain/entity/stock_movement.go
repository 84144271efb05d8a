package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones y condiciones de movimiento de inventario.
const (
	StockIn  = "in"
	StockOut = "out"

	StockGood = "good"
	StockBad  = "bad" // mercancía dañada/vencida que reingresa como bad stock
)

// StockMovement movimiento de bodega usado por la vista de velocidad de inventario.
type StockMovement struct {
	ID        string
	ProductID string
	Date      time.Time
	Quantity  decimal.Decimal
	Direction string // StockIn | StockOut
	Condition string // StockGood | StockBad
}
