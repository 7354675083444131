package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/customerdesk/internal/db"
	appErrors "github.com/unclebandit/customerdesk/internal/errors"
	"github.com/unclebandit/customerdesk/internal/model"
	"github.com/unclebandit/customerdesk/internal/repository"
)

// openTestDB connects to TEST_DATABASE_URL, recreates the schema and loads the seed rows.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	ctx := context.Background()
	_, err = pool.ExecContext(ctx, `DROP TABLE IF EXISTS employee_customer, employees, customers, companies`)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, pool))
	require.NoError(t, db.Seed(ctx, pool))
	return pool
}

func TestCustomerRepository_CreateAndList(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	repo := &repository.CustomerRepository{DB: pool}

	ann := &model.Customer{FirstName: "Ann", LastName: "Lee", Rating: 5, CompanyID: 1}
	require.NoError(t, repo.Create(ctx, ann))
	require.NotZero(t, ann.ID)

	rows, err := repo.ListWithCompany(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, *ann, rows[0].Customers)
	assert.Equal(t, "Acme Corp", rows[0].Companies.Name)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i-1].Customers.ID, rows[i].Customers.ID)
	}

	got, err := repo.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann, got)

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepository_DeleteUnreferenced(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	repo := &repository.CustomerRepository{DB: pool}
	links := &repository.EmployeeCustomerRepository{DB: pool}

	// customer 3 is served by two employees in the seed data
	referenced, err := links.ExistsForCustomer(ctx, 3)
	require.NoError(t, err)
	assert.True(t, referenced)

	referenced, err = links.ExistsForCustomer(ctx, 1)
	require.NoError(t, err)
	assert.False(t, referenced)

	err = repo.DeleteUnreferenced(ctx, 3)
	assert.True(t, errors.Is(err, appErrors.ErrCustomerHasEmployees))

	still, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, still)

	require.NoError(t, repo.DeleteUnreferenced(ctx, 1))
	gone, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = repo.DeleteUnreferenced(ctx, 1)
	assert.True(t, appErrors.IsCustomerNotFound(err))
}

func TestCompanyRepository_ListAll(t *testing.T) {
	pool := openTestDB(t)
	repo := &repository.CompanyRepository{DB: pool}

	companies, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 3)
}
