// internal/model/customer.go
package model

type Customer struct {
	ID        int    `db:"customer_id" json:"customer_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Rating    int    `db:"rating" json:"rating"`
	CompanyID int    `db:"company_id" json:"company_id"`
}

// CustomerInput is the create form, bound from first_name, last_name, rating and company_id.
type CustomerInput struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Rating    int    `validate:"gte=0,lte=5"`
	CompanyID int    `validate:"required,gt=0"`
}

func (in CustomerInput) Customer() *Customer {
	return &Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Rating:    in.Rating,
		CompanyID: in.CompanyID,
	}
}

// CustomerWithCompany is one row of customers JOIN companies, split back by source table.
type CustomerWithCompany struct {
	Customers Customer
	Companies Company
}
