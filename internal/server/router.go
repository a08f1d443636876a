package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth"
	"github.com/ChoneChone22/bambite-storefront/internal/cart"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/order"
	"github.com/ChoneChone22/bambite-storefront/internal/product"
	"github.com/ChoneChone22/bambite-storefront/internal/staff"
)

// NewRouter mounts the storefront API. Three tiers of access: public catalog
// and auth endpoints, authenticated customer endpoints, and staff/admin
// endpoints guarded by role.
func NewRouter(
	authModule *auth.Module,
	productCtrl *product.Controller,
	cartCtrl *cart.Controller,
	orderModule *order.Module,
	staffCtrl *staff.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	mw := authModule.Middleware

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authModule.Controller.HandleRegister)
			r.Post("/login", authModule.Controller.HandleLogin)
			r.Post("/password/forgot", authModule.Controller.HandleRequestReset)
			r.Post("/password/verify-otp", authModule.Controller.HandleVerifyOTP)
			r.Post("/password/reset", authModule.Controller.HandleResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireAuth)
				r.Post("/logout", authModule.Controller.HandleLogout)
				r.Get("/me", authModule.Controller.HandleMe)
			})
		})

		r.Get("/products", productCtrl.HandleListProducts)
		r.Get("/products/{id}", productCtrl.HandleGetProduct)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAuth)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartCtrl.HandleGetCart)
				r.Post("/items", cartCtrl.HandleAddItem)
				r.Put("/items/{productId}", cartCtrl.HandleUpdateItem)
				r.Delete("/items/{productId}", cartCtrl.HandleRemoveItem)
				r.Delete("/", cartCtrl.HandleClear)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/checkout", orderModule.Checkout.HandleCheckout)
				r.Get("/", orderModule.Orders.HandleListMine)
				r.Get("/{orderId}", orderModule.Orders.HandleGetOrder)
				r.Post("/{orderId}/cancel", orderModule.Orders.HandleCancel)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Use(mw.RequireAuth)
			r.Use(mw.RequireRole(domain.RoleStaff, domain.RoleAdmin))

			r.Get("/orders", orderModule.Orders.HandleListByStatus)
			r.Post("/orders/{orderId}/status", orderModule.Orders.HandleAdvanceStatus)
			// Staff see the full catalog, inactive products included.
			r.Get("/products", productCtrl.HandleListProducts)
			r.Get("/products/{id}", productCtrl.HandleGetProduct)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireAuth)
			r.Use(mw.RequireRole(domain.RoleAdmin))

			r.Route("/products", func(r chi.Router) {
				r.Post("/", productCtrl.HandleCreateProduct)
				r.Put("/{id}", productCtrl.HandleUpdateProduct)
				r.Patch("/{id}/active", productCtrl.HandleSetActive)
				r.Delete("/{id}", productCtrl.HandleDeleteProduct)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Post("/", staffCtrl.HandleCreateStaff)
				r.Get("/", staffCtrl.HandleListStaff)
				r.Patch("/{id}/active", staffCtrl.HandleSetActive)
				r.Post("/{id}/reset-password", staffCtrl.HandleResetPassword)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
