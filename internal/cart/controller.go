package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())

	view, err := c.service.GetCart(r.Context(), principal.UserID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (c *Controller) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ProductID <= 0 {
		httpx.WriteValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := c.service.AddItem(r.Context(), principal.UserID, req.ProductID, req.Quantity)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (c *Controller) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		httpx.WriteValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}
	if req.Quantity < 0 {
		httpx.WriteValidationError(w, "invalid quantity", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be non-negative",
		})
		return
	}

	view, err := c.service.UpdateItem(r.Context(), principal.UserID, productID, req.Quantity)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (c *Controller) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		httpx.WriteValidationError(w, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	view, err := c.service.RemoveItem(r.Context(), principal.UserID, productID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (c *Controller) HandleClear(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	principal, _ := auth.PrincipalFrom(r.Context())

	if err := c.service.Clear(r.Context(), principal.UserID); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
