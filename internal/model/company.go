// internal/model/company.go
package model

type Company struct {
	ID          int    `db:"company_id" json:"company_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

type EmployeeCustomer struct {
	EmployeeID int `db:"employee_id" json:"employee_id"`
	CustomerID int `db:"customer_id" json:"customer_id"`
}
