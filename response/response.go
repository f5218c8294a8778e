// Package response holds the public shapes returned by the read paths. The
// gorm column tags match the aliased projections the services select, so a
// scanned row comes back already keyed by external field names.
package response

import (
	"github.com/shopspring/decimal"
)

type Company struct {
	Handle       string  `gorm:"column:handle" json:"handle"`
	Name         string  `gorm:"column:name" json:"name"`
	Description  string  `gorm:"column:description" json:"description"`
	NumEmployees *int    `gorm:"column:numEmployees" json:"numEmployees"`
	LogoURL      *string `gorm:"column:logoUrl" json:"logoUrl"`

	Jobs []Job `gorm:"-" json:"jobs,omitempty"`
}

type Job struct {
	ID            int64            `gorm:"column:id" json:"id"`
	Title         string           `gorm:"column:title" json:"title"`
	Salary        *int64           `gorm:"column:salary" json:"salary"`
	Equity        *decimal.Decimal `gorm:"column:equity" json:"equity"`
	CompanyHandle string           `gorm:"column:companyHandle" json:"companyHandle,omitempty"`

	Company *Company `gorm:"-" json:"company,omitempty"`
}

type User struct {
	Username  string `gorm:"column:username" json:"username"`
	FirstName string `gorm:"column:firstName" json:"firstName"`
	LastName  string `gorm:"column:lastName" json:"lastName"`
	Email     string `gorm:"column:email" json:"email"`
	IsAdmin   bool   `gorm:"column:isAdmin" json:"isAdmin"`

	// IDs of jobs the user has applied to, attached on single-user reads.
	Applications []int64 `gorm:"-" json:"applications,omitempty"`
}
