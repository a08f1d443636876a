package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
)

const minPasswordLength = 8

type Controller struct {
	service    Service
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewController(service Service, sessionTTL time.Duration, logger *zap.Logger) *Controller {
	return &Controller{
		service:    service,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateRegisterRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		httpx.WriteValidationError(w, ve.Message, ve.Details...)
		return
	}

	user, err := c.service.Register(r.Context(), req)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, user)
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		httpx.WriteValidationError(w, "email and password are required")
		return
	}

	result, err := c.service.Login(r.Context(), req)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(c.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{Token: result.Token, User: result.User})
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	principal, ok := PrincipalFrom(r.Context())
	if !ok {
		writeUnauthorized(w, "missing session token")
		return
	}

	if err := c.service.Logout(r.Context(), principal.Token); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (c *Controller) HandleMe(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	principal, ok := PrincipalFrom(r.Context())
	if !ok {
		writeUnauthorized(w, "missing session token")
		return
	}

	user, err := c.service.CurrentUser(r.Context(), principal.UserID)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}

func (c *Controller) HandleRequestReset(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		httpx.WriteValidationError(w, "invalid email", apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address",
		})
		return
	}

	if err := c.service.RequestReset(r.Context(), req.Email); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	// Same response whether or not the account exists.
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "if the email is registered, a code has been sent",
	})
}

func (c *Controller) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Email == "" || req.Code == "" {
		httpx.WriteValidationError(w, "email and code are required")
		return
	}

	resetToken, err := c.service.VerifyOTP(r.Context(), req.Email, req.Code)
	if err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, VerifyOTPResponse{ResetToken: resetToken})
}

func (c *Controller) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.ResetToken == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "resetToken",
			Message: "resetToken is required",
		})
	}
	if len(req.NewPassword) < minPasswordLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "newPassword",
			Message: "newPassword must be at least 8 characters",
		})
	}
	if len(details) > 0 {
		httpx.WriteValidationError(w, "validation failed", details...)
		return
	}

	if err := c.service.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		httpx.WriteServiceError(w, logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (c *Controller) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func validateRegisterRequest(req RegisterRequest) error {
	var details []apperrors.ValidationDetail

	if req.FirstName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}
	if req.LastName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address",
		})
	}
	if len(req.Password) < minPasswordLength {
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
