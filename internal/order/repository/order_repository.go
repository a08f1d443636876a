package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, userId, firstName, lastName, email, phone, address,
	       status, totalPrice, createdAt, updatedAt`

func scanOrder(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.FirstName, &o.LastName, &o.Email, &o.Phone,
		&o.Address, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	return order, nil
}

// FindByIDForUpdate locks the order row inside a status-change transaction.
func (r *MySQLOrderRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ? FOR UPDATE`, orderColumns)

	order, err := scanOrder(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order for update: %w", err)
	}
	return order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (userId, firstName, lastName, email, phone, address, status, totalPrice)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		order.UserID, order.FirstName, order.LastName, order.Email,
		order.Phone, order.Address, order.Status, order.TotalPrice,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted order id: %w", err)
	}
	return uint(id), nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return nil
}

func (r *MySQLOrderRepository) UpdateTotalPrice(ctx context.Context, tx *sql.Tx, id uint, totalPrice float64) error {
	query := `UPDATE Orders SET totalPrice = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, totalPrice, id)
	if err != nil {
		return fmt.Errorf("updating order total price: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return nil
}

// ListByUser returns a page of the customer's orders, newest first, plus the
// total count.
func (r *MySQLOrderRepository) ListByUser(ctx context.Context, userID int, limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Orders WHERE userId = ?`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Orders
		WHERE userId = ?
		ORDER BY createdAt DESC, id DESC
		LIMIT ? OFFSET ?`, orderColumns)

	return r.list(ctx, query, total, userID, limit, offset)
}

// ListByStatus returns a page of orders in a given status for the staff
// board, oldest first so the kitchen works the queue in order.
func (r *MySQLOrderRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM Orders WHERE status = ?`, status,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Orders
		WHERE status = ?
		ORDER BY createdAt, id
		LIMIT ? OFFSET ?`, orderColumns)

	return r.list(ctx, query, total, status, limit, offset)
}

func (r *MySQLOrderRepository) list(ctx context.Context, query string, total int, filter interface{}, limit, offset int) ([]domain.Order, int, error) {
	rows, err := r.db.QueryContext(ctx, query, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, total, nil
}
