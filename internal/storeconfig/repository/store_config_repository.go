package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

// MySQLStoreConfigRepository reads the single storefront configuration row.
// A missing row falls back to defaults so a fresh database can serve orders.
type MySQLStoreConfigRepository struct {
	db *sql.DB
}

func NewMySQLStoreConfigRepository(db *sql.DB) *MySQLStoreConfigRepository {
	return &MySQLStoreConfigRepository{db: db}
}

func (r *MySQLStoreConfigRepository) Get(ctx context.Context) (*domain.StoreConfig, error) {
	query := `
		SELECT id, orderingEnabled, hasStockControl, createdAt, updatedAt
		FROM StoreConfig
		ORDER BY id
		LIMIT 1`

	var cfg domain.StoreConfig
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.ID, &cfg.OrderingEnabled, &cfg.HasStockControl,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return &domain.StoreConfig{OrderingEnabled: true, HasStockControl: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying store config: %w", err)
	}

	return &cfg, nil
}
