package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/dto"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, user domain.User, cartID uint, lines []dto.CheckoutLine, stockControl bool) (*dto.CheckoutResult, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type CartRepository interface {
	FindOrCreateByUser(ctx context.Context, userID int) (*domain.Cart, error)
}

type StoreConfigRepository interface {
	Get(ctx context.Context) (*domain.StoreConfig, error)
}

type CheckoutUseCase struct {
	users            UserRepository
	carts            CartRepository
	storeConfig      StoreConfigRepository
	checkoutSvc      CheckoutService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewCheckoutUseCase(
	users UserRepository,
	carts CartRepository,
	storeConfig StoreConfigRepository,
	checkoutSvc CheckoutService,
	logger *zap.Logger,
	maxRetryAttempts int,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		users:            users,
		carts:            carts,
		storeConfig:      storeConfig,
		checkoutSvc:      checkoutSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID int) (*dto.CheckoutResult, error) {
	uc.logger.Info("checkout started", zap.Int("userId", userID))

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart, err := uc.carts.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.NewConflictError("cart is empty")
	}

	cfg, err := uc.storeConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.OrderingEnabled {
		return nil, apperrors.NewConflictError("the store is not taking orders right now")
	}

	lines := make([]dto.CheckoutLine, len(cart.Items))
	for i, item := range cart.Items {
		lines[i] = dto.CheckoutLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	// Lock in ascending product id order so concurrent checkouts cannot
	// deadlock against each other.
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	return uc.checkoutWithRetry(ctx, *user, cart.ID, lines, cfg.HasStockControl)
}

func (uc *CheckoutUseCase) checkoutWithRetry(
	ctx context.Context,
	user domain.User,
	cartID uint,
	lines []dto.CheckoutLine,
	stockControl bool,
) (*dto.CheckoutResult, error) {
	maxAttempts := uc.maxRetryAttempts
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := uc.checkoutSvc.PlaceOrder(ctx, user, cartID, lines, stockControl)
		if err == nil {
			return result, nil
		}

		if isDeadlockError(err) {
			if attempt < maxAttempts {
				backoff := backoffs[(attempt-1)%len(backoffs)]
				// ±20% jitter so two retrying checkouts do not collide again.
				jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("deadlock detected, retrying checkout",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.Int("userId", user.ID),
				)
				continue
			}
			break
		}

		return nil, err
	}

	return nil, apperrors.NewDeadlockError("max checkout retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
