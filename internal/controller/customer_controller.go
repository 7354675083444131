// internal/controller/customer_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/customerdesk/internal/errors"
	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/service"
)

const (
	MsgCustomerStillServed = "There are still employees serving this customers, hence we cannot delete"
	MsgUnableToDelete      = "Unable to delete customer"
)

// Renderer turns a view name and payload into HTML.
type Renderer interface {
	Render(w io.Writer, name string, data map[string]any) error
}

type CustomerController struct {
	CustomerService *service.CustomerService
	Views           Renderer
}

func (c *CustomerController) Index(w http.ResponseWriter, r *http.Request) {
	c.render(w, "index", nil)
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.ListCustomers(r.Context())
	if err != nil {
		fail(w, "list customers", err, http.StatusInternalServerError)
		return
	}

	c.render(w, "customers", map[string]any{
		"allCustomers": customers,
	})
}

// In a server-rendered form flow GET shows the form and POST processes it.

func (c *CustomerController) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	companies, err := c.CustomerService.ListCompanies(r.Context())
	if err != nil {
		fail(w, "list companies", err, http.StatusInternalServerError)
		return
	}

	c.render(w, "create_customer", map[string]any{
		"companies": companies,
	})
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		fail(w, "parse form", err, http.StatusBadRequest)
		return
	}

	rating, err := formInt(r, "rating")
	if err != nil {
		fail(w, "parse rating", err, http.StatusBadRequest)
		return
	}
	companyID, err := formInt(r, "company_id")
	if err != nil {
		fail(w, "parse company_id", err, http.StatusBadRequest)
		return
	}

	in := model.CustomerInput{
		FirstName: strings.TrimSpace(r.PostForm.Get("first_name")),
		LastName:  strings.TrimSpace(r.PostForm.Get("last_name")),
		Rating:    rating,
		CompanyID: companyID,
	}

	if _, err := c.CustomerService.CreateCustomer(r.Context(), in); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appErrors.ErrInvalidCustomerInput) {
			status = http.StatusBadRequest
		}
		fail(w, "create customer", err, status)
		return
	}

	http.Redirect(w, r, "/customers", http.StatusFound)
}

func (c *CustomerController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		fail(w, "parse customer id", err, http.StatusBadRequest)
		return
	}

	customer, err := c.CustomerService.CustomerForDelete(r.Context(), id)
	if errors.Is(err, appErrors.ErrCustomerHasEmployees) {
		c.render(w, "errors", map[string]any{
			"errorMessage": MsgCustomerStillServed,
		})
		return
	}
	if err != nil {
		fail(w, "load customer", err, http.StatusInternalServerError)
		return
	}

	c.render(w, "confirm_delete_customer", map[string]any{
		"customer": customer,
	})
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		fail(w, "parse customer id", err, http.StatusBadRequest)
		return
	}

	if err := c.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		if appErrors.IsCustomerNotFound(err) {
			log.Println("⚠️ delete customer", id, ": already gone")
		} else {
			log.Println("⚠️ delete customer", id, ":", err)
		}
		c.render(w, "errors", map[string]any{
			"errorMessage": MsgUnableToDelete,
		})
		return
	}

	http.Redirect(w, r, "/customers", http.StatusFound)
}

func (c *CustomerController) render(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Views.Render(w, name, data); err != nil {
		fail(w, "render "+name, err, http.StatusInternalServerError)
	}
}

// fail logs err and answers with the bare status text.
func fail(w http.ResponseWriter, op string, err error, status int) {
	log.Printf("❌ %s: %v", op, err)
	http.Error(w, http.StatusText(status), status)
}

func customerID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func formInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(r.PostForm.Get(key)))
}
