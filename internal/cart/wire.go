package cart

import (
	"database/sql"

	"go.uber.org/zap"

	cartrepo "github.com/ChoneChone22/bambite-storefront/internal/cart/repository"
	productrepo "github.com/ChoneChone22/bambite-storefront/internal/product/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := cartrepo.NewMySQLCartRepository(db)
	products := productrepo.NewMySQLRepository(db)
	svc := NewService(repo, products, logger)
	return NewController(svc, logger)
}
