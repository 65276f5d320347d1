package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines straight from the
// database, bypassing the aggregate. Read-only: never locks, never mutates,
// never enqueues.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order views.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The owner filter lives in the SQL, so a
// mismatched owner and a missing order are indistinguishable to the caller.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_price,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND owner_id = ?
	`, query.OrderID().Bytes(), query.OwnerID().Bytes()).Row()

	var (
		id         uuid.UUID
		status     int
		totalPrice decimal.Decimal
		createdAt  time.Time
		updatedAt  time.Time
	)

	if err := row.Scan(&id, &status, &totalPrice, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	total, err := kernel.RestorePrice(totalPrice)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.ID = orderID
	response.Status = order.Status(status).String()
	response.TotalPrice = total
	response.CreatedAt = createdAt
	response.UpdatedAt = updatedAt

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawProductID uuid.UUID
			quantity     int
			rawUnitPrice decimal.Decimal
		)

		if err = rows.Scan(&rawProductID, &quantity, &rawUnitPrice); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(rawProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		unitPrice, priceErr := kernel.RestorePrice(rawUnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, OrderItemResponse{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Subtotal:  unitPrice.MulQuantity(quantity),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
