// Package repotest provides an in-memory stand-in for the PostgreSQL repositories.
package repotest

import (
	"context"
	"sort"
	"sync"

	appErrors "github.com/unclebandit/customerdesk/internal/errors"
	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/repository"
)

type Store struct {
	mu        sync.Mutex
	nextID    int
	customers map[int]model.Customer
	companies []model.Company
	links     []model.EmployeeCustomer

	// Err, when set, is returned by every call.
	Err error
}

func NewStore(companies ...model.Company) *Store {
	return &Store{
		nextID:    1,
		customers: map[int]model.Customer{},
		companies: companies,
	}
}

// AddCustomer inserts c keeping its ID when set.
func (s *Store) AddCustomer(c model.Customer) model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.nextID
	}
	if c.ID >= s.nextID {
		s.nextID = c.ID + 1
	}
	s.customers[c.ID] = c
	return c
}

func (s *Store) Assign(employeeID, customerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, model.EmployeeCustomer{EmployeeID: employeeID, CustomerID: customerID})
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}

func (s *Store) ListWithCompany(ctx context.Context) ([]model.CustomerWithCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []model.CustomerWithCompany{}
	for _, c := range s.customers {
		for _, co := range s.companies {
			if co.ID == c.CompanyID {
				out = append(out, model.CustomerWithCompany{Customers: c, Companies: co})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Customers.ID > out[j].Customers.ID })
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) Create(ctx context.Context, c *model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	c.ID = s.nextID
	s.nextID++
	s.customers[c.ID] = *c
	return nil
}

func (s *Store) DeleteUnreferenced(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.referenced(id) {
		return appErrors.ErrCustomerHasEmployees
	}
	if _, ok := s.customers[id]; !ok {
		return appErrors.NewCustomerNotFound(id)
	}
	delete(s.customers, id)
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Company{}, s.companies...), nil
}

func (s *Store) ExistsForCustomer(ctx context.Context, customerID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	return s.referenced(customerID), nil
}

func (s *Store) referenced(customerID int) bool {
	for _, l := range s.links {
		if l.CustomerID == customerID {
			return true
		}
	}
	return false
}

var (
	_ repository.CustomerRepositoryInterface         = (*Store)(nil)
	_ repository.CompanyRepositoryInterface          = (*Store)(nil)
	_ repository.EmployeeCustomerRepositoryInterface = (*Store)(nil)
)
