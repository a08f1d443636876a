package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int, limit, offset int) ([]domain.Order, int, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.Order, int, error)
}

type OrderItemRepository interface {
	FindByOrder(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type StatusService interface {
	Advance(ctx context.Context, orderID uint, to string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uint) (*domain.Order, error)
}

// Requester identifies who is asking, so order visibility can be enforced.
type Requester struct {
	UserID  int
	IsStaff bool
}

type TrackOrdersUseCase struct {
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	statusSvc     StatusService
	logger        *zap.Logger
}

func NewTrackOrdersUseCase(
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	statusSvc StatusService,
	logger *zap.Logger,
) *TrackOrdersUseCase {
	return &TrackOrdersUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		statusSvc:     statusSvc,
		logger:        logger,
	}
}

// GetOrder returns an order with its items. Customers only see their own
// orders; the not-found answer for foreign orders avoids leaking ids.
func (uc *TrackOrdersUseCase) GetOrder(ctx context.Context, req Requester, orderID uint) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !req.IsStaff && order.UserID != req.UserID {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	items, err := uc.orderItemRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (uc *TrackOrdersUseCase) ListMine(ctx context.Context, userID int, page commons.Pagination) ([]domain.Order, commons.Pagination, error) {
	orders, total, err := uc.orderRepo.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, page, err
	}
	return orders, page.WithTotal(total), nil
}

func (uc *TrackOrdersUseCase) ListByStatus(ctx context.Context, status string, page commons.Pagination) ([]domain.Order, commons.Pagination, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, page, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be a valid order status",
		})
	}

	orders, total, err := uc.orderRepo.ListByStatus(ctx, status, page.Limit(), page.Offset())
	if err != nil {
		return nil, page, err
	}
	return orders, page.WithTotal(total), nil
}

// Advance is staff-only; the route guard enforces the role, this layer only
// validates the transition.
func (uc *TrackOrdersUseCase) Advance(ctx context.Context, orderID uint, to string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(to) {
		return nil, apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be a valid order status",
		})
	}
	return uc.statusSvc.Advance(ctx, orderID, to)
}

// Cancel allows staff to cancel any order and customers to cancel their own,
// as long as the lifecycle still permits it.
func (uc *TrackOrdersUseCase) Cancel(ctx context.Context, req Requester, orderID uint) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !req.IsStaff && order.UserID != req.UserID {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	return uc.statusSvc.Cancel(ctx, orderID)
}
