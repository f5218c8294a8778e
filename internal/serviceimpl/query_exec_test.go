package serviceimpl_test

// These tests pin down the exact statements and bind values the services
// execute, using a mock connection behind gorm's postgres dialector.

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/serviceimpl"
	"github.com/openhire/go-jobboard/request"
	"github.com/openhire/go-jobboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockConn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = mockConn.Close()
	})

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: mockConn}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestGetJobsStatement(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, title, salary, equity, company_handle AS "companyHandle" FROM jobs`+
		` WHERE equity > 0 AND salary >= $1 AND title ILIKE $2 ORDER BY title`).
		WithArgs(int64(75000), "%test%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "salary", "equity", "companyHandle"}).
			AddRow(int64(7), "test engineer", int64(80000), "0.050", "acme"))

	jobs, err := serviceimpl.NewJobService(gdb).GetJobs(request.GetJobsRequest{
		Title:     utils.StringPtr("test"),
		MinSalary: utils.Int64Ptr(75000),
		HasEquity: utils.BoolPtr(true),
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "test engineer", jobs[0].Title)
	assert.Equal(t, "acme", jobs[0].CompanyHandle)
}

func TestGetJobsWithoutFiltersHasNoWhere(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, title, salary, equity, company_handle AS "companyHandle" FROM jobs ORDER BY title`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "salary", "equity", "companyHandle"}))

	jobs, err := serviceimpl.NewJobService(gdb).GetJobs(request.GetJobsRequest{})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestGetCompaniesStatement(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT handle, name, description, num_employees AS "numEmployees", logo_url AS "logoUrl" FROM companies`+
		` WHERE num_employees <= $1 AND num_employees >= $2 AND name ILIKE $3 ORDER BY name`).
		WithArgs(500, 10, "%net%").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "numEmployees", "logoUrl"}).
			AddRow("netco", "NetCo", "Networking", 120, nil))

	companies, err := serviceimpl.NewCompanyService(gdb).GetCompanies(request.GetCompaniesRequest{
		Name:         utils.StringPtr("net"),
		MinEmployees: utils.IntPtr(10),
		MaxEmployees: utils.IntPtr(500),
	})
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "netco", companies[0].Handle)
	assert.Equal(t, 120, *companies[0].NumEmployees)
}

func TestUpdateCompanyStatement(t *testing.T) {
	gdb, mock := newMockDB(t)

	// The lookup key continues the placeholder sequence after the SET fields.
	mock.ExpectQuery(`UPDATE companies SET "name"=$1, "num_employees"=$2 WHERE handle = $3`+
		` RETURNING handle, name, description, num_employees AS "numEmployees", logo_url AS "logoUrl"`).
		WithArgs("Acme Renamed", 300, "acme").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "numEmployees", "logoUrl"}).
			AddRow("acme", "Acme Renamed", "Makers of everything", 300, nil))

	company, err := serviceimpl.NewCompanyService(gdb).UpdateCompany("acme", request.UpdateCompanyRequest{
		Name:         utils.StringPtr("Acme Renamed"),
		NumEmployees: utils.IntPtr(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", company.Name)
	assert.Equal(t, 300, *company.NumEmployees)
}

func TestUpdateCompanyNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE companies SET "name"=$1 WHERE handle = $2`+
		` RETURNING handle, name, description, num_employees AS "numEmployees", logo_url AS "logoUrl"`).
		WithArgs("Ghost", "nope").
		WillReturnRows(sqlmock.NewRows([]string{"handle", "name", "description", "numEmployees", "logoUrl"}))

	_, err := serviceimpl.NewCompanyService(gdb).UpdateCompany("nope", request.UpdateCompanyRequest{
		Name: utils.StringPtr("Ghost"),
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateJobStatement(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE jobs SET "salary"=$1, "title"=$2 WHERE id = $3`+
		` RETURNING id, title, salary, equity, company_handle AS "companyHandle"`).
		WithArgs(int64(95000), "Senior Engineer", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "salary", "equity", "companyHandle"}).
			AddRow(int64(7), "Senior Engineer", int64(95000), nil, "acme"))

	job, err := serviceimpl.NewJobService(gdb).UpdateJob(7, request.UpdateJobRequest{
		Title:  utils.StringPtr("Senior Engineer"),
		Salary: utils.Int64Ptr(95000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", job.Title)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE users SET "first_name"=$1, "password"=$2 WHERE username = $3`+
		` RETURNING username, first_name AS "firstName", last_name AS "lastName", email, is_admin AS "isAdmin"`).
		WithArgs("Aliya", sqlmock.AnyArg(), "aliya").
		WillReturnRows(sqlmock.NewRows([]string{"username", "firstName", "lastName", "email", "isAdmin"}).
			AddRow("aliya", "Aliya", "Khan", "aliya@example.com", false))

	user, err := serviceimpl.NewUserService(gdb).UpdateUser("aliya", request.UpdateUserRequest{
		FirstName: utils.StringPtr("Aliya"),
		Password:  utils.StringPtr("new-password"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Aliya", user.FirstName)
}

func TestGetUsersStatement(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT username, first_name AS "firstName", last_name AS "lastName", email, is_admin AS "isAdmin"` +
		` FROM users ORDER BY username`).
		WillReturnRows(sqlmock.NewRows([]string{"username", "firstName", "lastName", "email", "isAdmin"}).
			AddRow("aliya", "Aliya", "Khan", "aliya@example.com", false).
			AddRow("bob", "Bob", "Lee", "bob@example.com", true))

	users, err := serviceimpl.NewUserService(gdb).GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "aliya", users[0].Username)
	assert.True(t, users[1].IsAdmin)
}
