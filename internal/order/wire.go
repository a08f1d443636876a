package order

import (
	"database/sql"

	"go.uber.org/zap"

	authrepo "github.com/ChoneChone22/bambite-storefront/internal/auth/repository"
	cartrepo "github.com/ChoneChone22/bambite-storefront/internal/cart/repository"
	"github.com/ChoneChone22/bambite-storefront/internal/config"
	"github.com/ChoneChone22/bambite-storefront/internal/order/controller"
	orderrepo "github.com/ChoneChone22/bambite-storefront/internal/order/repository"
	"github.com/ChoneChone22/bambite-storefront/internal/order/service"
	"github.com/ChoneChone22/bambite-storefront/internal/order/usecase"
	productrepo "github.com/ChoneChone22/bambite-storefront/internal/product/repository"
	storeconfigrepo "github.com/ChoneChone22/bambite-storefront/internal/storeconfig/repository"
)

type Module struct {
	Checkout *controller.CheckoutController
	Orders   *controller.OrdersController
}

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *Module {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	productRepo := productrepo.NewMySQLRepository(db)
	cartRepo := cartrepo.NewMySQLCartRepository(db)
	userRepo := authrepo.NewMySQLUserRepository(db)
	storeConfigRepo := storeconfigrepo.NewMySQLStoreConfigRepository(db)

	checkoutSvc := service.NewCheckoutService(
		db,
		productRepo,
		orderRepo,
		orderItemRepo,
		cartRepo,
		logger,
		cfg.Order.CheckoutTxTimeout,
	)

	statusSvc := service.NewStatusService(
		db,
		orderRepo,
		orderItemRepo,
		productRepo,
		logger,
		cfg.Order.CheckoutTxTimeout,
	)

	checkoutUC := usecase.NewCheckoutUseCase(
		userRepo,
		cartRepo,
		storeConfigRepo,
		checkoutSvc,
		logger,
		cfg.Order.MaxRetryAttempts,
	)

	trackUC := usecase.NewTrackOrdersUseCase(orderRepo, orderItemRepo, statusSvc, logger)

	return &Module{
		Checkout: controller.NewCheckoutController(checkoutUC, logger),
		Orders:   controller.NewOrdersController(trackUC, logger),
	}
}
