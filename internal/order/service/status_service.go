package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

// StatusService moves orders along the lifecycle. Both paths lock the order
// row first so two staff members cannot race the same transition.
type StatusService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	productRepo   ProductRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewStatusService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	productRepo ProductRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *StatusService {
	return &StatusService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// Advance moves an order to the given non-terminal status. Cancellations go
// through Cancel, which also restores stock.
func (s *StatusService) Advance(ctx context.Context, orderID uint, to string) (*domain.Order, error) {
	if to == domain.OrderStatusCanceled {
		return nil, apperrors.NewValidationError("use the cancel operation to cancel an order",
			apperrors.ValidationDetail{Field: "status", Message: "CANCELED is not a valid advance target"})
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, to) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("order cannot move from %s to %s", order.Status, to))
	}

	if err := s.orderRepo.UpdateStatus(txCtx, tx, orderID, to); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit status change", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order status advanced",
		zap.Uint("orderId", orderID),
		zap.String("from", order.Status),
		zap.String("to", to),
	)

	order.Status = to
	return order, nil
}

// Cancel cancels an order and puts consumed stock back. Orders already in
// preparation or beyond cannot be canceled.
func (s *StatusService) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.Cancelable(order.Status) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("order in status %s can no longer be canceled", order.Status))
	}

	items, err := s.orderItemRepo.FindByOrderTx(txCtx, tx, orderID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product, err := s.productRepo.FindByIDForUpdate(txCtx, tx, item.ProductID)
		if err != nil {
			// A product deleted since the order was placed has nothing to
			// restore.
			if _, ok := apperrors.IsNotFoundError(err); ok {
				continue
			}
			return nil, err
		}
		if !product.Stockeable {
			continue
		}
		if err := s.productRepo.AdjustStock(txCtx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(txCtx, tx, orderID, domain.OrderStatusCanceled); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit cancellation", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order canceled",
		zap.Uint("orderId", orderID),
		zap.String("previousStatus", order.Status),
	)

	order.Status = domain.OrderStatusCanceled
	return order, nil
}
