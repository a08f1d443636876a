package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth"
	"github.com/ChoneChone22/bambite-storefront/internal/dto"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, userID int) (*dto.CheckoutResult, error)
}

type CheckoutController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCheckout places an order from the caller's cart. The request carries
// no body; the cart is the source of truth.
func (c *CheckoutController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	principal, _ := auth.PrincipalFrom(r.Context())

	result, err := c.useCase.Checkout(r.Context(), principal.UserID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	items := make([]OrderItemDTO, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		})
	}

	httpx.WriteJSON(w, http.StatusCreated, CheckoutResponse{
		OrderID:    result.OrderID,
		Status:     result.Status,
		TotalPrice: result.TotalPrice,
		Items:      items,
		Timestamp:  time.Now().UTC(),
	})
}
