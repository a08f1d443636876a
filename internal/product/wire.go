package product

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/product/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
