package repository

import (
	"context"
	"database/sql"

	"github.com/unclebandit/customerdesk/internal/model"
)

type CompanyRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Company, error)
}

type CompanyRepository struct {
	DB *sql.DB
}

// ListAll fetches all companies for the create form's select list.
func (r *CompanyRepository) ListAll(ctx context.Context) ([]model.Company, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT company_id, name, description FROM companies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)
