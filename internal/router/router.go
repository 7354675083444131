// internal/router/router.go
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/customerdesk/internal/controller"
	"github.com/unclebandit/customerdesk/internal/handler"
)

func New(customers *controller.CustomerController, health *handler.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", customers.Index)

	// Customer routes
	r.Get("/customers", customers.ListCustomers)
	r.Get("/customers/create", customers.ShowCreateForm)
	r.Post("/customers/create", customers.CreateCustomer)
	r.Get("/customers/{id}/delete", customers.ConfirmDelete)
	r.Post("/customers/{id}/delete", customers.DeleteCustomer)

	if health != nil {
		r.Get("/healthz", health.Healthz)
	}
	return r
}
