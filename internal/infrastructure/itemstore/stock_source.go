package itemstore

import (
	"context"
	"time"

	"salesbi-api/internal/domain/entity"
	"salesbi-api/internal/domain/repository"
)

// StockSource adaptador de movimientos de bodega (vista de velocidad de stock).
type StockSource struct {
	client *Client
}

// NewStockSource construye el adaptador.
func NewStockSource(client *Client) *StockSource {
	return &StockSource{client: client}
}

func (s *StockSource) StockMovements(ctx context.Context, from, to time.Time) ([]entity.StockMovement, []repository.FetchIssue) {
	records, issues := s.client.FetchAll(ctx, Query{
		Collection: "stock_movement",
		Fields:     []string{"id", "product_id", "date", "quantity", "direction", "condition"},
		Filter:     dateFilter(from, to),
	})
	out := make([]entity.StockMovement, 0, len(records))
	for _, r := range records {
		productID := r.Ref("product_id")
		if productID == "" {
			continue
		}
		direction := r.Str("direction")
		if direction != entity.StockIn && direction != entity.StockOut {
			continue
		}
		condition := r.Str("condition")
		if condition == "" {
			condition = entity.StockGood
		}
		out = append(out, entity.StockMovement{
			ID:        r.Ref("id"),
			ProductID: productID,
			Date:      r.Date("date"),
			Quantity:  r.Dec("quantity"),
			Direction: direction,
			Condition: condition,
		})
	}
	return out, issues
}
