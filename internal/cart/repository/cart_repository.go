package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

type MySQLCartRepository struct {
	db *sql.DB
}

func NewMySQLCartRepository(db *sql.DB) *MySQLCartRepository {
	return &MySQLCartRepository{db: db}
}

// FindOrCreateByUser returns the customer's open cart, creating an empty one
// on first use. Carts has a unique index on userId so concurrent first
// requests cannot create two.
func (r *MySQLCartRepository) FindOrCreateByUser(ctx context.Context, userID int) (*domain.Cart, error) {
	insert := `INSERT IGNORE INTO Carts (userId) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, insert, userID); err != nil {
		return nil, fmt.Errorf("creating cart: %w", err)
	}

	var c domain.Cart
	query := `SELECT id, userId, createdAt, updatedAt FROM Carts WHERE userId = ?`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}

	items, err := r.findItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items

	return &c, nil
}

func (r *MySQLCartRepository) findItems(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	query := `
		SELECT id, cartId, productId, quantity
		FROM CartItems
		WHERE cartId = ?
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning cart item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart item rows: %w", err)
	}

	return items, nil
}

// UpsertItem sets the quantity of a cart line, inserting it when absent.
func (r *MySQLCartRepository) UpsertItem(ctx context.Context, cartID uint, productID, quantity int) error {
	query := `
		INSERT INTO CartItems (cartId, productId, quantity)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = VALUES(quantity)`

	if _, err := r.db.ExecContext(ctx, query, cartID, productID, quantity); err != nil {
		return fmt.Errorf("upserting cart item: %w", err)
	}
	return nil
}

func (r *MySQLCartRepository) RemoveItem(ctx context.Context, cartID uint, productID int) error {
	query := `DELETE FROM CartItems WHERE cartId = ? AND productId = ?`

	if _, err := r.db.ExecContext(ctx, query, cartID, productID); err != nil {
		return fmt.Errorf("removing cart item: %w", err)
	}
	return nil
}

func (r *MySQLCartRepository) Clear(ctx context.Context, cartID uint) error {
	query := `DELETE FROM CartItems WHERE cartId = ?`

	if _, err := r.db.ExecContext(ctx, query, cartID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// ClearTx empties a cart inside the checkout transaction.
func (r *MySQLCartRepository) ClearTx(ctx context.Context, tx *sql.Tx, cartID uint) error {
	query := `DELETE FROM CartItems WHERE cartId = ?`

	if _, err := tx.ExecContext(ctx, query, cartID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
