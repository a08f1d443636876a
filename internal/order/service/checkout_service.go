package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/dto"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ProductRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Product, error)
	AdjustStock(ctx context.Context, tx *sql.Tx, id int, delta int) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderTx(ctx context.Context, tx *sql.Tx, orderID uint) ([]domain.OrderItem, error)
}

type CartRepository interface {
	ClearTx(ctx context.Context, tx *sql.Tx, cartID uint) error
}

// CheckoutService turns a cart into an order inside a single transaction.
// Checkout is all-or-nothing: any line that cannot be fulfilled aborts the
// whole order.
type CheckoutService struct {
	db            TransactionManager
	productRepo   ProductRepository
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	cartRepo      CartRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewCheckoutService(
	db TransactionManager,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	cartRepo CartRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		cartRepo:      cartRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// PlaceOrder expects lines sorted by ascending product id; locking rows in a
// fixed order keeps concurrent checkouts from deadlocking on each other.
func (s *CheckoutService) PlaceOrder(
	ctx context.Context,
	user domain.User,
	cartID uint,
	lines []dto.CheckoutLine,
	stockControl bool,
) (*dto.CheckoutResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op once the transaction has committed.
	defer tx.Rollback()

	items := make([]dto.CheckoutItem, 0, len(lines))
	totalPrice := 0.0

	for _, line := range lines {
		item, err := s.checkoutLine(txCtx, tx, line, stockControl)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
		totalPrice += item.PriceAtTime * float64(item.Quantity)
	}

	order := domain.Order{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		Status:     domain.OrderStatusPending,
		TotalPrice: totalPrice,
	}

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Int("userId", user.ID), zap.Error(err))
		return nil, err
	}

	for i := range items {
		_, err := s.orderItemRepo.Insert(txCtx, tx, domain.OrderItem{
			OrderID:     orderID,
			ProductID:   items[i].ProductID,
			ProductName: items[i].ProductName,
			Quantity:    items[i].Quantity,
			PriceAtTime: items[i].PriceAtTime,
		})
		if err != nil {
			s.logger.Error("failed to insert order item", zap.Uint("orderId", orderID), zap.Error(err))
			return nil, err
		}
	}

	if err := s.cartRepo.ClearTx(txCtx, tx, cartID); err != nil {
		s.logger.Error("failed to clear cart", zap.Uint("cartId", cartID), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit checkout", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("checkout committed",
		zap.Uint("orderId", orderID),
		zap.Int("userId", user.ID),
		zap.Int("itemCount", len(items)),
		zap.Float64("totalPrice", totalPrice),
	)

	return &dto.CheckoutResult{
		OrderID:    orderID,
		Status:     domain.OrderStatusPending,
		TotalPrice: totalPrice,
		Items:      items,
	}, nil
}

func (s *CheckoutService) checkoutLine(
	ctx context.Context,
	tx *sql.Tx,
	line dto.CheckoutLine,
	stockControl bool,
) (*dto.CheckoutItem, error) {
	product, err := s.productRepo.FindByIDForUpdate(ctx, tx, line.ProductID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, lineConflict(line.ProductID, dto.ReasonNotFound)
		}
		return nil, err
	}

	if !product.Orderable() {
		return nil, lineConflict(line.ProductID, dto.ReasonProductInactive)
	}

	if stockControl && product.Stockeable {
		available := product.AvailableStock()
		if available == 0 {
			return nil, lineConflict(line.ProductID, dto.ReasonOutOfStock)
		}
		if available < line.Quantity {
			return nil, lineConflict(line.ProductID, dto.ReasonInsufficientStock)
		}

		if err := s.productRepo.AdjustStock(ctx, tx, line.ProductID, -line.Quantity); err != nil {
			return nil, err
		}
	}

	return &dto.CheckoutItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    line.Quantity,
		PriceAtTime: product.Price,
	}, nil
}

func lineConflict(productID int, reason dto.FailureReason) error {
	return apperrors.NewConflictError(fmt.Sprintf("product %d cannot be ordered: %s", productID, reason))
}
