package repository

import (
	"context"
	"database/sql"
	"errors"
)

type EmployeeCustomerRepositoryInterface interface {
	ExistsForCustomer(ctx context.Context, customerID int) (bool, error)
}

type EmployeeCustomerRepository struct {
	DB *sql.DB
}

// ExistsForCustomer checks if any employee is still assigned to the customer
func (r *EmployeeCustomerRepository) ExistsForCustomer(ctx context.Context, customerID int) (bool, error) {
	query := `
        SELECT 1 FROM employee_customer
        WHERE customer_id = $1
        LIMIT 1
    `
	var tmp int
	err := r.DB.QueryRowContext(ctx, query, customerID).Scan(&tmp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ EmployeeCustomerRepositoryInterface = (*EmployeeCustomerRepository)(nil)
