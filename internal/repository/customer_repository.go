package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/customerdesk/internal/errors"
	"github.com/unclebandit/customerdesk/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	ListWithCompany(ctx context.Context) ([]model.CustomerWithCompany, error)
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	DeleteUnreferenced(ctx context.Context, id int) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// foreign_key_violation
const pqForeignKeyViolation = "23503"

// ListWithCompany returns every customer joined to its company, newest id first.
func (r *CustomerRepository) ListWithCompany(ctx context.Context) ([]model.CustomerWithCompany, error) {
	query := `
        SELECT cu.customer_id, cu.first_name, cu.last_name, cu.rating, cu.company_id,
               co.company_id, co.name, co.description
        FROM customers cu
        JOIN companies co ON co.company_id = cu.company_id
        ORDER BY cu.customer_id DESC
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.CustomerWithCompany{}
	for rows.Next() {
		var row model.CustomerWithCompany
		cu, co := &row.Customers, &row.Companies
		if err := rows.Scan(&cu.ID, &cu.FirstName, &cu.LastName, &cu.Rating, &cu.CompanyID,
			&co.ID, &co.Name, &co.Description); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	query := `
        SELECT customer_id, first_name, last_name, rating, company_id
        FROM customers
        WHERE customer_id = $1
    `
	var c model.Customer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Rating, &c.CompanyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (first_name, last_name, rating, company_id)
        VALUES ($1, $2, $3, $4)
        RETURNING customer_id
    `
	return r.DB.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Rating, c.CompanyID).Scan(&c.ID)
}

// DeleteUnreferenced removes the customer only while no employee_customer row
// points at it. The guard and the delete are one statement, so a concurrent
// assignment cannot slip in between them.
func (r *CustomerRepository) DeleteUnreferenced(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        DELETE FROM customers
        WHERE customer_id = $1
          AND NOT EXISTS (SELECT 1 FROM employee_customer WHERE customer_id = $1)
    `, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return appErrors.ErrCustomerHasEmployees
		}
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var referenced bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM employee_customer WHERE customer_id = $1)`, id).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("classify failed delete: %w", err)
		}
		if referenced {
			return appErrors.ErrCustomerHasEmployees
		}
		return appErrors.NewCustomerNotFound(id)
	}

	return tx.Commit()
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
