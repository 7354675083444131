// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

var (
	// ErrCustomerHasEmployees means an employee_customer row still points at the customer.
	ErrCustomerHasEmployees = errors.New("customer is still assigned to employees")
	// ErrInvalidCustomerInput wraps validation failures on the create form.
	ErrInvalidCustomerInput = errors.New("invalid customer input")
)

type ErrCustomerNotFound struct {
	CustomerID int
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with ID %d not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id int) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

// IsCustomerNotFound reports whether err wraps an *ErrCustomerNotFound.
func IsCustomerNotFound(err error) bool {
	var nf *ErrCustomerNotFound
	return errors.As(err, &nf)
}
