package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists a customer's orders from the database.
// A customer with no orders gets an empty slice, not an error.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. The item count is aggregated in SQL so the
// listing never fans out into per-order line reads.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_price,
			COUNT(l.product_id),
			o.created_at
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.owner_id = ?
		GROUP BY o.id, o.status, o.total_price, o.created_at
		ORDER BY o.created_at DESC, o.id
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID      uuid.UUID
			status     int
			totalPrice decimal.Decimal
			itemCount  int
			createdAt  time.Time
		)

		if err = rows.Scan(&rawID, &status, &totalPrice, &itemCount, &createdAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		total, priceErr := kernel.RestorePrice(totalPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		summaries = append(summaries, GetOrdersQueryResponse{
			ID:         id,
			Status:     order.Status(status).String(),
			TotalPrice: total,
			ItemCount:  itemCount,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
