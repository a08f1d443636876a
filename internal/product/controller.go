package product

import (
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

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	filter := domain.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	// Inactive products are only visible to staff browsing the catalog.
	if principal, ok := auth.PrincipalFrom(r.Context()); ok && principal.IsStaff() {
		filter.IncludeInactive = r.URL.Query().Get("includeInactive") == "true"
	}

	page := commons.FromQuery(r.URL.Query())

	products, page, err := c.service.ListProducts(r.Context(), filter, page)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	httpx.WriteJSON(w, http.StatusOK, ListProductsResponse{
		Products: dtos,
		Page:     page.Page,
		PageSize: page.Size,
		Total:    page.Total,
	})
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.WriteValidationError(w, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	p, err := c.service.GetProduct(r.Context(), id)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	if !p.Orderable() {
		if principal, ok := auth.PrincipalFrom(r.Context()); !ok || !principal.IsStaff() {
			httpx.WriteServiceError(w, logger, apperrors.NewNotFoundError("product not found"))
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, toProductDTO(*p))
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var input CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateInput(input); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		httpx.WriteValidationError(w, ve.Message, ve.Details...)
		return
	}

	p, err := c.service.CreateProduct(r.Context(), input)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductDTO(*p))
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.WriteValidationError(w, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	var input UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if input.Price != nil && *input.Price < 0 {
		httpx.WriteValidationError(w, "invalid price", apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
		return
	}

	p, err := c.service.UpdateProduct(r.Context(), id, input)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductDTO(*p))
}

func (c *Controller) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.WriteValidationError(w, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	var body struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.IsActive == nil {
		httpx.WriteValidationError(w, "isActive is required", apperrors.ValidationDetail{
			Field:   "isActive",
			Message: "isActive must be a boolean",
		})
		return
	}

	if err := c.service.SetActive(r.Context(), id, *body.IsActive); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "product updated"})
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.WriteValidationError(w, "invalid product id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.service.DeleteProduct(r.Context(), id); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func validateCreateInput(input CreateProductInput) error {
	var details []apperrors.ValidationDetail

	if input.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if input.Price < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}
	if input.Category == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is required",
		})
	}
	if input.Stockeable && input.Stock == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock is required for stockeable products",
		})
	}
	if input.Stock != nil && *input.Stock < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
