package staff

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

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

func (c *Controller) HandleCreateStaff(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	var input CreateStaffInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if input.Role == "" {
		input.Role = domain.RoleStaff
	}

	if err := validateCreateStaffInput(input); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		httpx.WriteValidationError(w, ve.Message, ve.Details...)
		return
	}

	account, err := c.service.CreateStaff(r.Context(), input)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, account)
}

func (c *Controller) HandleListStaff(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	page := commons.FromQuery(r.URL.Query())

	staff, page, err := c.service.ListStaff(r.Context(), page)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ListStaffResponse{
		Staff:    staff,
		Page:     page.Page,
		PageSize: page.Size,
		Total:    page.Total,
	})
}

func (c *Controller) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, ok := parseStaffID(w, r)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		httpx.WriteValidationError(w, "isActive is required", apperrors.ValidationDetail{
			Field:   "isActive",
			Message: "isActive must be a boolean",
		})
		return
	}

	if err := c.service.SetActive(r.Context(), id, *req.IsActive); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "staff account updated"})
}

func (c *Controller) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	id, ok := parseStaffID(w, r)
	if !ok {
		return
	}

	password, err := c.service.ResetPassword(r.Context(), id)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ResetPasswordResponse{TempPassword: password})
}

func parseStaffID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httpx.WriteValidationError(w, "invalid staff id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func validateCreateStaffInput(input CreateStaffInput) error {
	var details []apperrors.ValidationDetail

	if input.FirstName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}
	if input.LastName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if input.Role != domain.RoleStaff && input.Role != domain.RoleAdmin {
		details = append(details, apperrors.ValidationDetail{
			Field:   "role",
			Message: "role must be STAFF or ADMIN",
		})
	}
	if input.Password != "" && len(input.Password) < 8 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
