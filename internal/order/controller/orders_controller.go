package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth"
	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/order/usecase"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
)

type TrackOrdersUseCase interface {
	GetOrder(ctx context.Context, req usecase.Requester, orderID uint) (*domain.Order, error)
	ListMine(ctx context.Context, userID int, page commons.Pagination) ([]domain.Order, commons.Pagination, error)
	ListByStatus(ctx context.Context, status string, page commons.Pagination) ([]domain.Order, commons.Pagination, error)
	Advance(ctx context.Context, orderID uint, to string) (*domain.Order, error)
	Cancel(ctx context.Context, req usecase.Requester, orderID uint) (*domain.Order, error)
}

type OrdersController struct {
	useCase TrackOrdersUseCase
	logger  *zap.Logger
}

func NewOrdersController(useCase TrackOrdersUseCase, logger *zap.Logger) *OrdersController {
	return &OrdersController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrdersController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	principal, _ := auth.PrincipalFrom(r.Context())
	requester := usecase.Requester{UserID: principal.UserID, IsStaff: principal.IsStaff()}

	order, err := c.useCase.GetOrder(r.Context(), requester, orderID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (c *OrdersController) HandleListMine(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())
	page := commons.FromQuery(r.URL.Query())

	orders, page, err := c.useCase.ListMine(r.Context(), principal.UserID, page)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toListResponse(orders, page))
}

// HandleListByStatus serves the staff order board.
func (c *OrdersController) HandleListByStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	status := r.URL.Query().Get("status")
	if status == "" {
		status = domain.OrderStatusPending
	}
	page := commons.FromQuery(r.URL.Query())

	orders, page, err := c.useCase.ListByStatus(r.Context(), status, page)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toListResponse(orders, page))
}

func (c *OrdersController) HandleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	var req AdvanceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		httpx.WriteValidationError(w, "status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be a valid order status",
		})
		return
	}

	order, err := c.useCase.Advance(r.Context(), orderID, req.Status)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (c *OrdersController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	principal, _ := auth.PrincipalFrom(r.Context())
	requester := usecase.Requester{UserID: principal.UserID, IsStaff: principal.IsStaff()}

	order, err := c.useCase.Cancel(r.Context(), requester, orderID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrderResponse(*order))
}

func parseOrderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	orderID, err := strconv.ParseUint(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || orderID == 0 {
		httpx.WriteValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func toListResponse(orders []domain.Order, page commons.Pagination) ListOrdersResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return ListOrdersResponse{
		Orders:   out,
		Page:     page.Page,
		PageSize: page.Size,
		Total:    page.Total,
	}
}
