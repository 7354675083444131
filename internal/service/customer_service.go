// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/customerdesk/internal/errors"
	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/queue"
	"github.com/unclebandit/customerdesk/internal/repository"
)

type CustomerService struct {
	CustomerRepo         repository.CustomerRepositoryInterface
	CompanyRepo          repository.CompanyRepositoryInterface
	EmployeeCustomerRepo repository.EmployeeCustomerRepositoryInterface

	// Queue receives customer events after successful writes. Optional.
	Queue       queue.Queue
	EventsTopic string
}

var validate = validator.New()

// ListCustomers returns customers joined to their company, newest first.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.CustomerWithCompany, error) {
	return s.CustomerRepo.ListWithCompany(ctx)
}

// ListCompanies returns the choices for the create form.
func (s *CustomerService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return s.CompanyRepo.ListAll(ctx)
}

func (s *CustomerService) CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidCustomerInput, err)
	}

	c := in.Customer()
	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.publish(model.CustomerCreated, c.ID)
	return c, nil
}

// CustomerForDelete loads the customer shown on the delete confirmation page.
// It fails with ErrCustomerHasEmployees while employees are still assigned.
// A missing customer is returned as nil, nil.
func (s *CustomerService) CustomerForDelete(ctx context.Context, id int) (*model.Customer, error) {
	referenced, err := s.EmployeeCustomerRepo.ExistsForCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if referenced {
		return nil, appErrors.ErrCustomerHasEmployees
	}
	return s.CustomerRepo.GetByID(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.CustomerRepo.DeleteUnreferenced(ctx, id); err != nil {
		return err
	}
	s.publish(model.CustomerDeleted, id)
	return nil
}

func (s *CustomerService) publish(eventType string, customerID int) {
	if s.Queue == nil {
		return
	}
	event := model.NewCustomerEvent(eventType, customerID)
	if err := s.Queue.Publish(s.EventsTopic, event); err != nil {
		log.Println("⚠️ failed to publish", eventType, "for customer", customerID, ":", err)
	}
}
