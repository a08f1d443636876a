package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

// Insert writes one order line inside the checkout transaction. The product
// name is snapshotted so order history survives catalog edits.
func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error) {
	query := `
		INSERT INTO OrderItems (orderId, productId, productName, quantity, priceAtTime)
		VALUES (?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.PriceAtTime,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order item id: %w", err)
	}
	return uint(id), nil
}

func (r *MySQLOrderItemRepository) FindByOrder(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, productId, productName, quantity, priceAtTime
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.PriceAtTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}

// FindByOrderTx reads order lines under the cancellation transaction.
func (r *MySQLOrderItemRepository) FindByOrderTx(ctx context.Context, tx *sql.Tx, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, productId, productName, quantity, priceAtTime
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY productId`

	rows, err := tx.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.PriceAtTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}
