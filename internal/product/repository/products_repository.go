package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const productColumns = `id, name, description, price, stock, category,
	       imageUrl, isActive, isDeleted, stockeable, createdAt, updatedAt`

func scanProduct(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category,
		&p.ImageURL, &p.IsActive, &p.IsDeleted, &p.Stockeable,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MySQLRepository) List(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, int, error) {
	conditions := []string{"isDeleted = 0"}
	var args []interface{}

	if !filter.IncludeInactive {
		conditions = append(conditions, "isActive = 1")
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM Product WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM Product
		WHERE %s
		ORDER BY category, name
		LIMIT ? OFFSET ?`,
		productColumns, where,
	)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, total, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ? AND isDeleted = 0`, productColumns)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}
	return p, nil
}

// FindByIDForUpdate locks the product row for the duration of the checkout
// transaction.
func (r *MySQLRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ? AND isDeleted = 0 FOR UPDATE`, productColumns)

	p, err := scanProduct(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}
	return p, nil
}

// AdjustStock changes the stock of a stock-tracked product by delta within a
// transaction. Negative deltas consume stock at checkout; positive deltas
// restore it on cancellation.
func (r *MySQLRepository) AdjustStock(ctx context.Context, tx *sql.Tx, id int, delta int) error {
	query := `UPDATE Product SET stock = stock + ? WHERE id = ? AND stockeable = 1`

	result, err := tx.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("stockeable product with id %d not found", id))
	}
	return nil
}

func (r *MySQLRepository) Insert(ctx context.Context, p domain.Product) (int, error) {
	query := `
		INSERT INTO Product (name, description, price, stock, category, imageUrl, isActive, stockeable)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, p.Category, p.ImageURL,
		p.IsActive, p.Stockeable,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting inserted product id: %w", err)
	}
	return int(id), nil
}

func (r *MySQLRepository) Update(ctx context.Context, p domain.Product) error {
	query := `
		UPDATE Product
		SET name = ?, description = ?, price = ?, stock = ?, category = ?,
		    imageUrl = ?, stockeable = ?
		WHERE id = ? AND isDeleted = 0`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, p.Category, p.ImageURL,
		p.Stockeable, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", p.ID))
	}
	return nil
}

func (r *MySQLRepository) SetActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE Product SET isActive = ? WHERE id = ? AND isDeleted = 0`

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("updating product active flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return nil
}

func (r *MySQLRepository) SoftDelete(ctx context.Context, id int) error {
	query := `UPDATE Product SET isDeleted = 1, isActive = 0 WHERE id = ? AND isDeleted = 0`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	return nil
}
